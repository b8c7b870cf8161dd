package logger

import (
	"log/slog"
	"testing"
)

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"Password", true},
		{"credential_digest", true},
		{"mobile_token", true},
		{"api_secret", true},
		{"username", false},
		{"room_guid", false},
		{"host", false},
	}

	for _, tt := range tests {
		if got := IsSensitiveKey(tt.key); got != tt.want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRedactSensitiveAttr(t *testing.T) {
	a := redactSensitive(slog.String("password", "hunter2"))
	if a.Value.String() != redactedValue {
		t.Errorf("password value = %q, want redacted", a.Value.String())
	}

	a = redactSensitive(slog.String("username", "alice"))
	if a.Value.String() != "alice" {
		t.Errorf("username value = %q, want unchanged", a.Value.String())
	}

	// Empty sensitive values pass through; nothing to hide.
	a = redactSensitive(slog.String("password", ""))
	if a.Value.String() != "" {
		t.Errorf("empty password value = %q, want empty", a.Value.String())
	}

	// Non-string values are left alone even under a sensitive key.
	a = redactSensitive(slog.Int("token_count", 3))
	if a.Value.Int64() != 3 {
		t.Errorf("int value = %d, want 3", a.Value.Int64())
	}
}

func TestRedactSensitiveGroup(t *testing.T) {
	g := slog.Group("user",
		slog.String("username", "alice"),
		slog.String("password", "hunter2"),
	)

	out := redactSensitive(g)
	attrs := out.Value.Group()
	if len(attrs) != 2 {
		t.Fatalf("group size = %d, want 2", len(attrs))
	}
	if attrs[0].Value.String() != "alice" {
		t.Errorf("username in group = %q, want alice", attrs[0].Value.String())
	}
	if attrs[1].Value.String() != redactedValue {
		t.Errorf("password in group = %q, want redacted", attrs[1].Value.String())
	}
}
