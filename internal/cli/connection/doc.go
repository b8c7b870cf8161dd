// Package connection provides HTTP communication for roomstore-cli.
package connection
