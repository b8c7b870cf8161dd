// Package domain defines the core domain models for RoomStore.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "RS-ROOM-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// User Errors (USER)
// ============================================================================

var (
	// ErrUserNotFound indicates the requested user was not found.
	ErrUserNotFound = NewDomainError("RS-USER-4040", "user not found")

	// ErrDuplicateUser indicates the username is already taken.
	ErrDuplicateUser = NewDomainError("RS-USER-4090", "user already exists")
)

// ============================================================================
// Authentication & Session Errors (AUTH, SESS)
// ============================================================================

var (
	// ErrAuthFailed indicates no user matched the username/credential pair.
	ErrAuthFailed = NewDomainError("RS-AUTH-4010", "authentication failed")

	// ErrNotLoggedIn indicates no session exists for the acting username.
	ErrNotLoggedIn = NewDomainError("RS-SESS-4010", "invalid action, login first")

	// ErrSessionExpired indicates the session expired and was evicted.
	ErrSessionExpired = NewDomainError("RS-SESS-4011", "session expired, please login again")
)

// ============================================================================
// Room Errors (ROOM)
// ============================================================================

var (
	// ErrRoomNotFound indicates the requested room guid is unknown.
	ErrRoomNotFound = NewDomainError("RS-ROOM-4040", "room not found")

	// ErrInvalidNewHost indicates host reassignment to an unknown user.
	ErrInvalidNewHost = NewDomainError("RS-ROOM-4001", "invalid new host")

	// ErrRoomFull indicates a join attempt against a room at capacity.
	ErrRoomFull = NewDomainError("RS-ROOM-4090", "room is already full")
)

// ============================================================================
// System Errors (SYS, ARG)
// ============================================================================

var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("RS-SYS-5000", "internal server error")

	// ErrStorageError indicates a persistence layer error.
	ErrStorageError = NewDomainError("RS-SYS-5001", "storage error")

	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("RS-SYS-4000", "bad request")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("RS-SYS-4290", "too many requests")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("RS-ARG-1002", "missing required argument")
)
