// Package main provides the entry point for roomstore-cli.
package main

import (
	"fmt"
	"os"

	"github.com/t1amat9409/roomstore-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
