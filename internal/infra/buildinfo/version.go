// Package buildinfo exposes the version stamped into the binary.
//
// Release builds set the variables through ldflags, for example:
//
//	go build -ldflags "-X github.com/t1amat9409/roomstore-go/internal/infra/buildinfo.Version=v1.2.0"
//
// Development builds fall back to the VCS metadata the Go toolchain
// embeds, when available.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags on release builds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	if Commit != "unknown" {
		return
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			if BuildTime == "unknown" {
				BuildTime = s.Value
			}
		}
	}
}

// String renders the stamp as a single line, used by --version output
// and the startup log.
func String() string {
	return fmt.Sprintf("%s (%s) built at %s", Version, Commit, BuildTime)
}
