package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/t1amat9409/roomstore-go/internal/core/domain"
	"github.com/t1amat9409/roomstore-go/internal/storage/snapshot"
)

// Saver persists the complete store state after a mutation. Save failures
// are logged by the Store, not surfaced to callers.
type Saver interface {
	Save(state *snapshot.State) error
}

// Config configures a Store.
type Config struct {
	// Saver receives the full state after every successful mutation.
	// Optional; a nil Saver disables persistence (used in tests).
	Saver Saver

	// Logger for persistence failures and reload diagnostics.
	// Optional; defaults to slog.Default().
	Logger *slog.Logger

	// Now is the clock used for session expiry. Optional; defaults to
	// time.Now.
	Now func() time.Time

	// Observe is called after every operation with its name and error.
	// Optional; feeds the operation counter.
	Observe func(op string, err error)
}

// Store is the single source of truth for users, rooms, and sessions.
//
// Operations read-then-write (uniqueness check then append, capacity check
// then join), so one coarse lock serializes them all; the snapshot save
// runs inside the same critical section as the mutation it follows.
type Store struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	rooms    map[string]*domain.Room
	sessions *SessionRegistry

	saver   Saver
	logger  *slog.Logger
	now     func() time.Time
	observe func(op string, err error)
}

// New creates an empty Store.
func New(cfg Config) *Store {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Store{
		users:    make(map[string]*domain.User),
		rooms:    make(map[string]*domain.Room),
		sessions: NewSessionRegistry(cfg.Now),
		saver:    cfg.Saver,
		logger:   cfg.Logger,
		now:      cfg.Now,
		observe:  cfg.Observe,
	}
}

// NewFromState creates a Store populated from a loaded snapshot. Persisted
// rooms carry usernames only; members are re-resolved against the loaded
// users, and a room whose host no longer resolves is dropped with a
// warning.
func NewFromState(cfg Config, state *snapshot.State) *Store {
	s := New(cfg)

	for _, rec := range state.Users {
		// The persisted password field already holds the digest;
		// it must not be derived again.
		s.users[rec.Username] = &domain.User{
			ID:               rec.ID,
			Username:         rec.Username,
			CredentialDigest: rec.Password,
			MobileToken:      rec.MobileToken,
		}
	}

	for _, rec := range state.Rooms {
		room, err := domain.NewRoom(domain.RoomInput{
			Name:         rec.Name,
			Host:         rec.Host,
			Participants: rec.Participants,
			Limit:        rec.Limit,
			GUID:         rec.GUID,
		}, s.lookupLocked)
		if err != nil {
			s.logger.Warn("dropping room with unresolvable host",
				"guid", rec.GUID,
				"host", rec.Host)
			continue
		}
		s.rooms[room.GUID] = room
	}

	s.sessions.Restore(state.AuthSession)
	return s
}

// Stats describes the current collection sizes, for gauges.
type Stats struct {
	Users    int
	Rooms    int
	Sessions int
}

// Flush writes the current state through the Saver and returns the save
// error. Used at shutdown; unlike the per-mutation saves, the caller
// gets to see a failure.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saver == nil {
		return nil
	}
	return s.saver.Save(s.stateLocked())
}

// Stats returns the current collection sizes.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Users:    len(s.users),
		Rooms:    len(s.rooms),
		Sessions: s.sessions.Len(),
	}
}

// observed reports an operation outcome to the configured observer.
func (s *Store) observed(op string, err error) {
	if s.observe != nil {
		s.observe(op, err)
	}
}

// lookupLocked resolves a username to a user. Callers hold s.mu.
func (s *Store) lookupLocked(username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound.WithDetails(username)
	}
	return u, nil
}

// requireSessionLocked guards a mutating operation on behalf of username.
// A lazy eviction mutates the registry, so the state is persisted even
// when the guard itself fails.
func (s *Store) requireSessionLocked(username string) error {
	evicted, err := s.sessions.RequireActive(username)
	if evicted {
		s.persistLocked()
	}
	return err
}

// persistLocked snapshots the current state through the Saver. Failures
// are logged; durability of the last write is the most that can be lost.
func (s *Store) persistLocked() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.stateLocked()); err != nil {
		s.logger.Error("snapshot save failed", "error", err)
	}
}

// stateLocked builds the persistable form of the store. Users and rooms
// are sorted for stable snapshot files; the host's username is excluded
// from the persisted participant list.
func (s *Store) stateLocked() *snapshot.State {
	state := snapshot.NewState()

	usernames := make([]string, 0, len(s.users))
	for username := range s.users {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	for _, username := range usernames {
		u := s.users[username]
		state.Users = append(state.Users, snapshot.UserRecord{
			ID:          u.ID,
			Username:    u.Username,
			Password:    u.CredentialDigest,
			MobileToken: u.MobileToken,
		})
	}

	guids := make([]string, 0, len(s.rooms))
	for guid := range s.rooms {
		guids = append(guids, guid)
	}
	sort.Strings(guids)
	for _, guid := range guids {
		room := s.rooms[guid]
		participants := make([]string, 0, len(room.Members))
		for username := range room.Members {
			if username != room.Host.Username {
				participants = append(participants, username)
			}
		}
		sort.Strings(participants)
		state.Rooms = append(state.Rooms, snapshot.RoomRecord{
			Name:         room.Name,
			GUID:         room.GUID,
			Limit:        room.Limit,
			Host:         room.Host.Username,
			Participants: participants,
		})
	}

	state.AuthSession = s.sessions.Snapshot()
	return state
}
