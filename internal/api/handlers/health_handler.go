package handlers

import (
	"net/http"

	"github.com/marinval/userhub-be/internal/monitoring"
)

// HealthHandler serves the unauthenticated liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Get reports service status with a point-in-time host stats snapshot.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, monitoring.Snapshot())
}
