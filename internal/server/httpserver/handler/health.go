package handler

import (
	"net/http"
	"time"

	"github.com/t1amat9409/roomstore-go/internal/infra/buildinfo"
)

// handleHome handles GET /.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"service": "roomstore",
		"version": buildinfo.Version,
	})
}

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()
	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "healthy",
		"time":     time.Now().UTC().Format(time.RFC3339),
		"users":    stats.Users,
		"rooms":    stats.Rooms,
		"sessions": stats.Sessions,
	})
}
