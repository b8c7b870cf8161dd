// Package main provides the entry point for roomstore-server.
//
// The server is the core RoomStore service that provides:
//
//   - HTTP API for user registration, authentication, and room membership
//   - Prometheus metrics at /metrics
//   - Snapshot persistence of the full store state to a single JSON file
//
// Usage:
//
//	roomstore-server [flags]
//	roomstore-server --config /path/to/config.yaml
//
// The server loads configuration, restores the store from its snapshot,
// and serves the HTTP API until it receives a termination signal.
package main
