package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/t1amat9409/roomstore-go/internal/core/domain"
	"github.com/t1amat9409/roomstore-go/internal/core/service"
	"github.com/t1amat9409/roomstore-go/internal/telemetry/logger"
)

// Handler is the main HTTP handler that routes requests to the store.
type Handler struct {
	store  *service.Store
	logger *slog.Logger
	mux    *http.ServeMux
}

// New creates a new Handler backed by the given store.
func New(store *service.Store, log *slog.Logger) *Handler {
	h := &Handler{
		store:  store,
		logger: log,
		mux:    http.NewServeMux(),
	}
	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /{$}", h.handleHome)
	h.mux.HandleFunc("GET /health", h.handleHealth)

	h.mux.HandleFunc("GET /users", h.handleListUsers)
	h.mux.HandleFunc("GET /users/{username}", h.handleGetUser)
	h.mux.HandleFunc("POST /users/add", h.handleAddUser)
	h.mux.HandleFunc("POST /users/auth", h.handleAuthUser)
	h.mux.HandleFunc("POST /users/edit", h.handleEditUser)
	h.mux.HandleFunc("POST /users/delete", h.handleDeleteUser)

	h.mux.HandleFunc("GET /rooms", h.handleListRooms)
	h.mux.HandleFunc("GET /rooms/{guid}", h.handleGetRoom)
	h.mux.HandleFunc("POST /rooms/search", h.handleSearchRooms)
	h.mux.HandleFunc("POST /rooms/add", h.handleAddRoom)
	h.mux.HandleFunc("POST /rooms/edit", h.handleEditRoom)
	h.mux.HandleFunc("POST /rooms/joinOrLeave", h.handleJoinLeaveRoom)
}

// decode reads the JSON request body into target.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		h.writeError(w, r, http.StatusBadRequest,
			"RS-SYS-4000", "invalid request body", nil)
		return false
	}
	return true
}

// writeJSON writes a JSON response with the standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	requestID := logger.RequestIDFromContext(r.Context())
	response := NewResponse(requestID, data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with the standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	requestID := logger.RequestIDFromContext(r.Context())
	response := NewErrorResponse(requestID, code, message, details)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// handleServiceError converts store errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		h.writeError(w, r, errorCodeToHTTPStatus(code), code, err.Error(), nil)
		return
	}

	logger.L(r.Context(), h.logger).Error("internal error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError,
		"RS-SYS-5000", "internal server error", nil)
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4090"):
		return http.StatusConflict
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasSuffix(code, "-4001"), strings.HasSuffix(code, "-4000"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4010"), strings.HasSuffix(code, "-4011"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "RS-ARG-"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "RS-SYS-5"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
