package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger      *slog.Logger
	environment string
}

// NewHealthHandler creates the health check handler.
func NewHealthHandler(logger *slog.Logger, environment string) *HealthHandler {
	return &HealthHandler{
		logger:      logger,
		environment: environment,
	}
}

// HealthResponse represents the health check reply.
type HealthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "ok",
		Environment: h.environment,
		Timestamp:   time.Now().UTC(),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
