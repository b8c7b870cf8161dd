package domain

import "testing"

func TestDeriveIDDeterministic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ns    Namespace
	}{
		{"username", "alice", NamespaceUser},
		{"password", "hunter2", NamespaceCredential},
		{"empty input", "", NamespaceUser},
		{"unicode input", "пользователь", NamespaceCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := DeriveID(tt.input, tt.ns)
			second := DeriveID(tt.input, tt.ns)
			if first != second {
				t.Errorf("DeriveID not deterministic: %q != %q", first, second)
			}
			if first == "" {
				t.Error("DeriveID returned empty identifier")
			}
		})
	}
}

func TestDeriveIDNamespacesDiffer(t *testing.T) {
	input := "alice"
	asUser := DeriveID(input, NamespaceUser)
	asCredential := DeriveID(input, NamespaceCredential)
	if asUser == asCredential {
		t.Errorf("same input in different namespaces yielded identical id %q", asUser)
	}
}

func TestDeriveIDDistinctInputs(t *testing.T) {
	if DeriveID("alice", NamespaceUser) == DeriveID("bob", NamespaceUser) {
		t.Error("distinct inputs yielded identical ids")
	}
}
