// Package domain defines the core domain models for RoomStore.
package domain

import "github.com/google/uuid"

// Namespace selects the derivation domain for DeriveID. Using distinct
// namespaces guarantees that the same input string never yields the same
// identifier in two different roles.
type Namespace int

const (
	// NamespaceUser derives stable user identifiers from usernames.
	NamespaceUser Namespace = iota

	// NamespaceCredential derives non-reversible digests from plaintext
	// passwords for storage in place of the secret.
	NamespaceCredential
)

// DeriveID deterministically derives a UUIDv5 identifier from input within
// the given namespace. Any string is valid input; the same (input,
// namespace) pair always yields the same identifier.
func DeriveID(input string, ns Namespace) string {
	space := uuid.NameSpaceURL
	if ns == NamespaceCredential {
		space = uuid.NameSpaceDNS
	}
	return uuid.NewSHA1(space, []byte(input)).String()
}
