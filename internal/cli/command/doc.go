// Package command provides CLI command definitions for roomstore-cli.
//
// It uses urfave/cli/v2 for command parsing. Commands speak the server's
// HTTP API through the connection package.
package command
