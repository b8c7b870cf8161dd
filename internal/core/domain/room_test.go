package domain

import (
	"errors"
	"strings"
	"testing"
)

// testDirectory is a UserLookup backed by a plain map.
func testDirectory(users ...*User) UserLookup {
	byName := make(map[string]*User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return func(username string) (*User, error) {
		u, ok := byName[username]
		if !ok {
			return nil, ErrUserNotFound
		}
		return u, nil
	}
}

func testUser(username string) *User {
	return NewUser(UserInput{Username: username, Password: username + "-pw"})
}

func TestNewRoomGUID(t *testing.T) {
	first, err := NewRoomGUID()
	if err != nil {
		t.Fatalf("NewRoomGUID: %v", err)
	}
	second, err := NewRoomGUID()
	if err != nil {
		t.Fatalf("NewRoomGUID: %v", err)
	}

	if !strings.HasPrefix(first, RoomGUIDPrefix) {
		t.Errorf("guid %q missing %q prefix", first, RoomGUIDPrefix)
	}
	if first == second {
		t.Errorf("consecutive guids identical: %q", first)
	}
}

func TestNewRoom(t *testing.T) {
	alice := testUser("alice")
	bob := testUser("bob")
	lookup := testDirectory(alice, bob)

	room, err := NewRoom(RoomInput{
		Name:         "r1",
		Host:         "alice",
		Participants: []string{"bob", "ghost"},
		Limit:        3,
	}, lookup)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}

	if room.Host != alice {
		t.Error("host not resolved to alice")
	}
	if !room.HasMember("alice") {
		t.Error("host not included in members")
	}
	if !room.HasMember("bob") {
		t.Error("existing participant bob not included")
	}
	if room.HasMember("ghost") {
		t.Error("unknown participant ghost was included")
	}
	if room.Limit != 3 {
		t.Errorf("limit = %d, want 3", room.Limit)
	}
	if room.GUID == "" {
		t.Error("guid not generated")
	}
}

func TestNewRoomUnknownHost(t *testing.T) {
	_, err := NewRoom(RoomInput{Name: "r1", Host: "ghost"}, testDirectory())
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestNewRoomDefaults(t *testing.T) {
	alice := testUser("alice")
	room, err := NewRoom(RoomInput{Name: "r1", Host: "alice", GUID: "rm-fixed"}, testDirectory(alice))
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	if room.Limit != DefaultRoomLimit {
		t.Errorf("limit = %d, want default %d", room.Limit, DefaultRoomLimit)
	}
	if room.GUID != "rm-fixed" {
		t.Errorf("guid = %q, want supplied rm-fixed", room.GUID)
	}
}

func TestReassignHost(t *testing.T) {
	alice := testUser("alice")
	bob := testUser("bob")
	lookup := testDirectory(alice, bob)

	room, err := NewRoom(RoomInput{Name: "r1", Host: "alice"}, lookup)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}

	if err := room.ReassignHost("bob", lookup); err != nil {
		t.Fatalf("ReassignHost: %v", err)
	}
	if room.Host != bob {
		t.Error("host not reassigned to bob")
	}
	if !room.HasMember("bob") {
		t.Error("new host not added to members")
	}

	if err := room.ReassignHost("ghost", lookup); !errors.Is(err, ErrInvalidNewHost) {
		t.Errorf("err = %v, want ErrInvalidNewHost", err)
	}
	if room.Host != bob {
		t.Error("failed reassignment changed the host")
	}
}

func TestToggleMembership(t *testing.T) {
	alice := testUser("alice")
	bob := testUser("bob")
	carol := testUser("carol")
	dave := testUser("dave")
	lookup := testDirectory(alice, bob, carol, dave)

	room, err := NewRoom(RoomInput{
		Name:         "r1",
		Host:         "alice",
		Participants: []string{"bob"},
		Limit:        3,
	}, lookup)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}

	// Non-member joins.
	change, err := room.Toggle(carol)
	if err != nil {
		t.Fatalf("Toggle join: %v", err)
	}
	if !change.Joined || change.Left {
		t.Errorf("change = %+v, want joined", change)
	}

	// Room is now at limit 3; a fourth user is rejected.
	if _, err := room.Toggle(dave); !errors.Is(err, ErrRoomFull) {
		t.Errorf("err = %v, want ErrRoomFull", err)
	}
	if room.HasMember("dave") {
		t.Error("rejected user was added anyway")
	}

	// Member leaves, even the host.
	change, err = room.Toggle(alice)
	if err != nil {
		t.Fatalf("Toggle leave: %v", err)
	}
	if !change.Left || change.Joined {
		t.Errorf("change = %+v, want left", change)
	}
	if room.HasMember("alice") {
		t.Error("alice still a member after leaving")
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	alice := testUser("alice")
	bob := testUser("bob")
	lookup := testDirectory(alice, bob)

	room, err := NewRoom(RoomInput{Name: "r1", Host: "alice", Limit: 5}, lookup)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}

	before := len(room.Members)
	if _, err := room.Toggle(bob); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := room.Toggle(bob); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if len(room.Members) != before || room.HasMember("bob") {
		t.Error("join then leave did not restore the member set")
	}
}

func TestRoomViewSorted(t *testing.T) {
	alice := testUser("alice")
	bob := testUser("bob")
	carol := testUser("carol")
	lookup := testDirectory(alice, bob, carol)

	room, err := NewRoom(RoomInput{
		Name:         "r1",
		Host:         "carol",
		Participants: []string{"bob", "alice"},
	}, lookup)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}

	view := room.View()
	if view.Host.Username != "carol" {
		t.Errorf("view host = %q, want carol", view.Host.Username)
	}
	if len(view.Participants) != 3 {
		t.Fatalf("participants = %d, want 3", len(view.Participants))
	}
	for i, want := range []string{"alice", "bob", "carol"} {
		if view.Participants[i].Username != want {
			t.Errorf("participants[%d] = %q, want %q", i, view.Participants[i].Username, want)
		}
	}
}
