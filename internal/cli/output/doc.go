// Package output provides output formatting for roomstore-cli.
package output
