// Package main provides the entry point for roomstore-cli.
//
// The CLI tool provides command-line access to a RoomStore server for:
//
//   - User management (list, get, add, auth, edit, delete)
//   - Room management (list, info, search, add, edit, join-leave)
//   - Server status
//
// Usage:
//
//	roomstore-cli [command] [flags]
//	roomstore-cli user list --output json
//	roomstore-cli room add --name general --host alice
package main
