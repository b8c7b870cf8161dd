package service

import (
	"context"
	"sort"

	"github.com/t1amat9409/roomstore-go/internal/core/domain"
)

// AddUser registers a new user. The username must not be taken.
func (s *Store) AddUser(_ context.Context, input domain.UserInput) (_ domain.UserView, err error) {
	defer func() { s.observed("add_user", err) }()

	if input.Username == "" || input.Password == "" {
		return domain.UserView{}, domain.ErrMissingArgument.WithDetails("username and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[input.Username]; exists {
		return domain.UserView{}, domain.ErrDuplicateUser.WithDetails(input.Username)
	}

	u := domain.NewUser(input)
	s.users[u.Username] = u
	s.persistLocked()
	return u.View(), nil
}

// Authenticate checks the username/password pair and, on success, issues a
// session for the username.
func (s *Store) Authenticate(_ context.Context, username, password string) (_ domain.UserView, err error) {
	defer func() { s.observed("authenticate", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok || u.CredentialDigest != domain.DeriveID(password, domain.NamespaceCredential) {
		return domain.UserView{}, domain.ErrAuthFailed
	}

	s.sessions.Issue(username)
	s.persistLocked()
	return u.View(), nil
}

// UpdateUser applies an update to the named user. The acting username must
// hold an active session.
func (s *Store) UpdateUser(_ context.Context, username string, update domain.UserUpdate) (_ domain.UserView, err error) {
	defer func() { s.observed("update_user", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSessionLocked(username); err != nil {
		return domain.UserView{}, err
	}

	u, err := s.lookupLocked(username)
	if err != nil {
		return domain.UserView{}, err
	}

	u.ApplyUpdate(update)
	s.persistLocked()
	return u.View(), nil
}

// DeleteUser removes the named user. The acting username must hold an
// active session; deleting an unknown user is rejected rather than
// silently succeeding. Rooms keep their persisted reference to the
// username; it stops resolving on the next reload.
func (s *Store) DeleteUser(_ context.Context, username string) (err error) {
	defer func() { s.observed("delete_user", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSessionLocked(username); err != nil {
		return err
	}

	if _, ok := s.users[username]; !ok {
		return domain.ErrUserNotFound.WithDetails(username)
	}

	delete(s.users, username)
	s.persistLocked()
	return nil
}

// GetUser returns the named user's view. No session is required.
func (s *Store) GetUser(_ context.Context, username string) (_ domain.UserView, err error) {
	defer func() { s.observed("get_user", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.lookupLocked(username)
	if err != nil {
		return domain.UserView{}, err
	}
	return u.View(), nil
}

// GetUsers returns all user views, sorted by username. No session is
// required.
func (s *Store) GetUsers(_ context.Context) []domain.UserView {
	defer s.observed("get_users", nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]domain.UserView, 0, len(s.users))
	for _, u := range s.users {
		views = append(views, u.View())
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].Username < views[j].Username
	})
	return views
}
