package service

import (
	"time"

	"github.com/t1amat9409/roomstore-go/internal/core/domain"
)

// SessionTTL is the fixed lifetime of a login session.
const SessionTTL = 3 * time.Minute

// SessionRegistry maps usernames to session expiry timestamps (Unix
// milliseconds). At most one live expiry exists per username;
// re-authentication overwrites the prior entry.
//
// The registry is not safe for concurrent use on its own; the Store's
// lock covers it.
type SessionRegistry struct {
	expiries map[string]int64
	now      func() time.Time
}

// NewSessionRegistry creates an empty registry. now may be nil, in which
// case time.Now is used.
func NewSessionRegistry(now func() time.Time) *SessionRegistry {
	if now == nil {
		now = time.Now
	}
	return &SessionRegistry{
		expiries: make(map[string]int64),
		now:      now,
	}
}

// Issue grants username a fresh session expiring SessionTTL from now,
// replacing any prior entry.
func (r *SessionRegistry) Issue(username string) {
	r.expiries[username] = r.now().Add(SessionTTL).UnixMilli()
}

// IsActive reports whether username holds an unexpired session. An expired
// entry is lazily evicted; evicted tells the caller the registry changed
// and must be persisted.
func (r *SessionRegistry) IsActive(username string) (active, evicted bool) {
	expiry, ok := r.expiries[username]
	if !ok {
		return false, false
	}
	if r.now().UnixMilli() > expiry {
		delete(r.expiries, username)
		return false, true
	}
	return true, false
}

// RequireActive is the guard consulted before every mutating operation.
// It returns ErrNotLoggedIn when no entry exists and ErrSessionExpired
// when the entry expired (in which case it is evicted and evicted is
// true).
func (r *SessionRegistry) RequireActive(username string) (evicted bool, err error) {
	if _, ok := r.expiries[username]; !ok {
		return false, domain.ErrNotLoggedIn
	}
	if active, evicted := r.IsActive(username); !active {
		return evicted, domain.ErrSessionExpired
	}
	return false, nil
}

// Len returns the number of registered sessions, expired or not.
func (r *SessionRegistry) Len() int {
	return len(r.expiries)
}

// Snapshot returns a copy of the username -> expiry mapping.
func (r *SessionRegistry) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(r.expiries))
	for username, expiry := range r.expiries {
		out[username] = expiry
	}
	return out
}

// Restore replaces the registry contents with the given mapping.
func (r *SessionRegistry) Restore(expiries map[string]int64) {
	r.expiries = make(map[string]int64, len(expiries))
	for username, expiry := range expiries {
		r.expiries[username] = expiry
	}
}
