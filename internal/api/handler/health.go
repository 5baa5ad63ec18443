package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/torneokills/torneo/internal/api/apierr"
	"github.com/torneokills/torneo/internal/api/response"
)

// Pinger is satisfied by the storage backends
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and store reachability
type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Get handles GET /api/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("store ping failed", slog.String("error", err.Error()))
		WriteError(w, apierr.NewStoreUnavailableError())
		return
	}

	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
