// Package logger provides structured logging for RoomStore.
//
// It wraps log/slog with JSON output by default, runtime-adjustable log
// level, request-ID propagation through contexts, and automatic redaction
// of credential material (passwords, digests, tokens) from log attributes.
package logger
