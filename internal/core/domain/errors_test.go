package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{
			"without details",
			NewDomainError("RS-ROOM-4040", "room not found"),
			"[RS-ROOM-4040] room not found",
		},
		{
			"with details",
			NewDomainError("RS-ROOM-4001", "invalid new host").WithDetails("ghost"),
			"[RS-ROOM-4001] invalid new host: ghost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrRoomFull.WithDetails("guid rm-x"))

	if !errors.Is(err, ErrRoomFull) {
		t.Error("errors.Is failed to match by code")
	}
	if errors.Is(err, ErrRoomNotFound) {
		t.Error("errors.Is matched a different code")
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := ErrStorageError.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
	if err.Cause != cause {
		t.Error("WithCause did not retain the cause")
	}
	if ErrStorageError.Cause != nil {
		t.Error("WithCause mutated the sentinel")
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(ErrDuplicateUser); code != "RS-USER-4090" {
		t.Errorf("code = %q, want RS-USER-4090", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Errorf("code = %q for plain error, want empty", code)
	}
}

func TestIsDomainError(t *testing.T) {
	if !IsDomainError(ErrNotLoggedIn, "RS-SESS-4010") {
		t.Error("IsDomainError failed on exact code")
	}
	if !IsDomainError(ErrNotLoggedIn, "") {
		t.Error("IsDomainError failed on empty code")
	}
	if IsDomainError(errors.New("plain"), "") {
		t.Error("IsDomainError matched a plain error")
	}
}
