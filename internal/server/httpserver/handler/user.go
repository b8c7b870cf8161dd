package handler

import (
	"net/http"

	"github.com/t1amat9409/roomstore-go/internal/core/domain"
)

// handleListUsers handles GET /users.
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.store.GetUsers(r.Context())
	h.writeJSON(w, r, http.StatusOK, users)
}

// handleGetUser handles GET /users/{username}.
func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(r.Context(), r.PathValue("username"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, user)
}

// handleAddUser handles POST /users/add.
func (h *Handler) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.store.AddUser(r.Context(), domain.UserInput{
		Username:    req.Username,
		Password:    req.Password,
		MobileToken: req.MobileToken,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, user)
}

// handleAuthUser handles POST /users/auth. A successful authentication
// opens a session for the user.
func (h *Handler) handleAuthUser(w http.ResponseWriter, r *http.Request) {
	var req AuthUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.store.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, user)
}

// handleEditUser handles POST /users/edit.
func (h *Handler) handleEditUser(w http.ResponseWriter, r *http.Request) {
	var req EditUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.store.UpdateUser(r.Context(), req.Username, domain.UserUpdate{
		Password:    req.Password,
		MobileToken: req.MobileToken,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, user)
}

// handleDeleteUser handles POST /users/delete.
func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	var req DeleteUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.store.DeleteUser(r.Context(), req.Username); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"username": req.Username,
		"status":   "deleted",
	})
}
