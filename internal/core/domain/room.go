// Package domain defines the core domain models for RoomStore.
package domain

import (
	"crypto/rand"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultRoomLimit is the member capacity applied when none is requested.
const DefaultRoomLimit = 5

// RoomGUIDPrefix is the prefix for generated room identifiers.
const RoomGUIDPrefix = "rm-"

// Room represents a named, capacity-bounded group of users with one host.
// Membership is a set keyed by username; no ordering is guaranteed.
type Room struct {
	GUID    string
	Name    string
	Host    *User
	Members map[string]*User
	Limit   int
}

// RoomInput contains parameters for room creation.
type RoomInput struct {
	Name         string   `json:"name"`
	Host         string   `json:"host"`
	Participants []string `json:"participants"`
	Limit        int      `json:"limit"`

	// GUID, when set, is used verbatim instead of generating one. Only
	// snapshot reload supplies it.
	GUID string `json:"guid,omitempty"`
}

// RoomView is the externally visible projection of a Room. Participants are
// sorted by username for stable output.
type RoomView struct {
	Name         string     `json:"name"`
	GUID         string     `json:"guid"`
	Host         UserView   `json:"host"`
	Participants []UserView `json:"participants"`
	Limit        int        `json:"limit"`
}

// UserLookup resolves a username to a User, or ErrUserNotFound.
type UserLookup func(username string) (*User, error)

// NewRoomGUID generates a fresh room identifier from a ULID, which embeds
// a millisecond timestamp plus random entropy.
func NewRoomGUID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternalServer.WithCause(err)
	}
	return RoomGUIDPrefix + strings.ToLower(id.String()), nil
}

// NewRoom creates a Room. The host must resolve through lookup; requested
// participants that do not resolve are silently skipped. The host is always
// a member and never counts against the limit at creation.
func NewRoom(input RoomInput, lookup UserLookup) (*Room, error) {
	host, err := lookup(input.Host)
	if err != nil {
		return nil, err
	}

	guid := input.GUID
	if guid == "" {
		guid, err = NewRoomGUID()
		if err != nil {
			return nil, err
		}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRoomLimit
	}

	members := make(map[string]*User, len(input.Participants)+1)
	for _, username := range input.Participants {
		if u, err := lookup(username); err == nil {
			members[u.Username] = u
		}
	}
	members[host.Username] = host

	return &Room{
		GUID:    guid,
		Name:    input.Name,
		Host:    host,
		Members: members,
		Limit:   limit,
	}, nil
}

// View returns the public projection of the room.
func (r *Room) View() RoomView {
	participants := make([]UserView, 0, len(r.Members))
	for _, u := range r.Members {
		participants = append(participants, u.View())
	}
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].Username < participants[j].Username
	})

	return RoomView{
		Name:         r.Name,
		GUID:         r.GUID,
		Host:         r.Host.View(),
		Participants: participants,
		Limit:        r.Limit,
	}
}

// HasMember reports whether the given username is currently a member.
func (r *Room) HasMember(username string) bool {
	_, ok := r.Members[username]
	return ok
}

// ReassignHost replaces the host with the user named by username. The new
// host must resolve through lookup, otherwise ErrInvalidNewHost is
// returned. The new host is added to the member set so the "host is always
// a member" invariant holds.
func (r *Room) ReassignHost(username string, lookup UserLookup) error {
	next, err := lookup(username)
	if err != nil {
		return ErrInvalidNewHost.WithDetails(username)
	}
	r.Host = next
	r.Members[next.Username] = next
	return nil
}

// MembershipChange reports the outcome of a Toggle call.
type MembershipChange struct {
	Joined bool
	Left   bool
}

// Toggle flips the user's membership: a current member leaves
// unconditionally; a non-member joins unless the room is at capacity, in
// which case ErrRoomFull is returned and the room is unchanged.
func (r *Room) Toggle(user *User) (MembershipChange, error) {
	if r.HasMember(user.Username) {
		delete(r.Members, user.Username)
		return MembershipChange{Left: true}, nil
	}
	if len(r.Members) >= r.Limit {
		return MembershipChange{}, ErrRoomFull
	}
	r.Members[user.Username] = user
	return MembershipChange{Joined: true}, nil
}
