// Package domain defines the core domain models for RoomStore.
package domain

// User represents a registered account. The plaintext password is never
// stored; only its derived digest is kept.
type User struct {
	// ID is the stable identifier derived from the username.
	ID string `json:"id"`

	// Username is the unique, case-sensitive account name.
	Username string `json:"username"`

	// CredentialDigest is the UUIDv5 digest of the plaintext password.
	CredentialDigest string `json:"credential_digest"`

	// MobileToken is an optional push notification token.
	MobileToken string `json:"mobile_token"`
}

// UserInput contains parameters for user creation.
type UserInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	MobileToken string `json:"mobile_token,omitempty"`

	// ID, when set, is used verbatim instead of deriving one from the
	// username. Only snapshot reload supplies it.
	ID string `json:"_id,omitempty"`
}

// UserUpdate contains parameters for updating an existing user.
type UserUpdate struct {
	Password    string `json:"password"`
	MobileToken string `json:"mobile_token,omitempty"`
}

// UserView is the externally visible projection of a User.
//
// The credential digest is deliberately part of the view; boundary callers
// decide whether to redact it.
type UserView struct {
	ID               string `json:"_id"`
	Username         string `json:"username"`
	CredentialDigest string `json:"password"`
	MobileToken      string `json:"mobile_token"`
}

// NewUser creates a User from input, deriving the id and credential digest.
// Well-formed input never fails.
func NewUser(input UserInput) *User {
	id := input.ID
	if id == "" {
		id = DeriveID(input.Username, NamespaceUser)
	}
	return &User{
		ID:               id,
		Username:         input.Username,
		CredentialDigest: DeriveID(input.Password, NamespaceCredential),
		MobileToken:      input.MobileToken,
	}
}

// View returns the public projection of the user.
func (u *User) View() UserView {
	return UserView{
		ID:               u.ID,
		Username:         u.Username,
		CredentialDigest: u.CredentialDigest,
		MobileToken:      u.MobileToken,
	}
}

// ApplyUpdate recomputes the credential digest from the new password and
// replaces the mobile token only when one is provided. The user is mutated
// in place and returned.
func (u *User) ApplyUpdate(update UserUpdate) *User {
	u.CredentialDigest = DeriveID(update.Password, NamespaceCredential)
	if update.MobileToken != "" {
		u.MobileToken = update.MobileToken
	}
	return u
}
