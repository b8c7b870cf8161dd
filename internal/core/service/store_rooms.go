package service

import (
	"context"
	"sort"

	"github.com/t1amat9409/roomstore-go/internal/core/domain"
)

// AddRoom creates a room. The host must hold an active session and must
// resolve to an existing user.
func (s *Store) AddRoom(_ context.Context, input domain.RoomInput) (_ domain.RoomView, err error) {
	defer func() { s.observed("add_room", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSessionLocked(input.Host); err != nil {
		return domain.RoomView{}, err
	}

	if input.GUID != "" {
		if _, exists := s.rooms[input.GUID]; exists {
			return domain.RoomView{}, domain.ErrBadRequest.WithDetails("room guid already exists")
		}
	}

	room, err := domain.NewRoom(input, s.lookupLocked)
	if err != nil {
		return domain.RoomView{}, err
	}

	s.rooms[room.GUID] = room
	s.persistLocked()
	return room.View(), nil
}

// ChangeRoomHost reassigns the host of the room identified by guid. The
// acting host must hold an active session; the next host must resolve to
// an existing user.
func (s *Store) ChangeRoomHost(_ context.Context, actingHost, nextHost, guid string) (_ domain.RoomView, err error) {
	defer func() { s.observed("change_room_host", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSessionLocked(actingHost); err != nil {
		return domain.RoomView{}, err
	}

	room, ok := s.rooms[guid]
	if !ok {
		return domain.RoomView{}, domain.ErrRoomNotFound.WithDetails(guid)
	}

	if err := room.ReassignHost(nextHost, s.lookupLocked); err != nil {
		return domain.RoomView{}, err
	}

	s.persistLocked()
	return room.View(), nil
}

// RoomInfo returns the view of the room identified by guid. No session is
// required.
func (s *Store) RoomInfo(_ context.Context, guid string) (_ domain.RoomView, err error) {
	defer func() { s.observed("room_info", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[guid]
	if !ok {
		return domain.RoomView{}, domain.ErrRoomNotFound.WithDetails(guid)
	}
	return room.View(), nil
}

// MembershipResult reports the outcome of JoinLeaveRoom.
type MembershipResult struct {
	Joined bool            `json:"joined"`
	Left   bool            `json:"left"`
	Room   domain.RoomView `json:"room"`
}

// JoinLeaveRoom toggles the user's membership in the room identified by
// guid: members leave, non-members join unless the room is full. The
// acting username must hold an active session.
func (s *Store) JoinLeaveRoom(_ context.Context, username, guid string) (_ MembershipResult, err error) {
	defer func() { s.observed("join_leave_room", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSessionLocked(username); err != nil {
		return MembershipResult{}, err
	}

	room, ok := s.rooms[guid]
	if !ok {
		return MembershipResult{}, domain.ErrRoomNotFound.WithDetails(guid)
	}

	user, err := s.lookupLocked(username)
	if err != nil {
		return MembershipResult{}, err
	}

	change, err := room.Toggle(user)
	if err != nil {
		return MembershipResult{}, err
	}

	s.persistLocked()
	return MembershipResult{
		Joined: change.Joined,
		Left:   change.Left,
		Room:   room.View(),
	}, nil
}

// Search returns the views of all rooms whose member set contains
// username, sorted by guid. No session is required.
func (s *Store) Search(_ context.Context, username string) []domain.RoomView {
	defer s.observed("search", nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]domain.RoomView, 0)
	for _, room := range s.rooms {
		if room.HasMember(username) {
			views = append(views, room.View())
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].GUID < views[j].GUID
	})
	return views
}

// ListRooms returns all room views, sorted by guid. No session is
// required.
func (s *Store) ListRooms(_ context.Context) []domain.RoomView {
	defer s.observed("list_rooms", nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]domain.RoomView, 0, len(s.rooms))
	for _, room := range s.rooms {
		views = append(views, room.View())
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].GUID < views[j].GUID
	})
	return views
}
