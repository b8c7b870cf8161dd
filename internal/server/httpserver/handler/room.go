package handler

import (
	"net/http"

	"github.com/t1amat9409/roomstore-go/internal/core/domain"
)

// handleListRooms handles GET /rooms.
func (h *Handler) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms := h.store.ListRooms(r.Context())
	h.writeJSON(w, r, http.StatusOK, rooms)
}

// handleGetRoom handles GET /rooms/{guid}.
func (h *Handler) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.RoomInfo(r.Context(), r.PathValue("guid"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, room)
}

// handleSearchRooms handles POST /rooms/search, returning the rooms the
// given user belongs to.
func (h *Handler) handleSearchRooms(w http.ResponseWriter, r *http.Request) {
	var req SearchRoomsRequest
	if !h.decode(w, r, &req) {
		return
	}
	rooms := h.store.Search(r.Context(), req.Username)
	h.writeJSON(w, r, http.StatusOK, rooms)
}

// handleAddRoom handles POST /rooms/add.
func (h *Handler) handleAddRoom(w http.ResponseWriter, r *http.Request) {
	var req AddRoomRequest
	if !h.decode(w, r, &req) {
		return
	}

	room, err := h.store.AddRoom(r.Context(), domain.RoomInput{
		Name:         req.Name,
		Host:         req.Host,
		Participants: req.Participants,
		Limit:        req.Limit,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, room)
}

// handleEditRoom handles POST /rooms/edit, which transfers room
// hosting to a new user.
func (h *Handler) handleEditRoom(w http.ResponseWriter, r *http.Request) {
	var req EditRoomRequest
	if !h.decode(w, r, &req) {
		return
	}

	room, err := h.store.ChangeRoomHost(r.Context(), req.Host, req.NewHost, req.GUID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, room)
}

// handleJoinLeaveRoom handles POST /rooms/joinOrLeave.
func (h *Handler) handleJoinLeaveRoom(w http.ResponseWriter, r *http.Request) {
	var req JoinLeaveRoomRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.store.JoinLeaveRoom(r.Context(), req.Username, req.GUID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}
