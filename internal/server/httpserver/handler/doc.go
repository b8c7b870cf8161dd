// Package handler provides HTTP request handlers for RoomStore.
//
// It implements the HTTP API endpoints for user management,
// authentication, and room membership operations.
package handler
