package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/torneokills/torneo/internal/api/handler"
	"github.com/torneokills/torneo/internal/api/middleware"
	"github.com/torneokills/torneo/internal/services/payout"
	"github.com/torneokills/torneo/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	Storage       storage.Storage
	PayoutService *payout.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	formDataHandler := handler.NewFormDataHandler(cfg.PayoutService, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.Storage, cfg.Logger)

	// API subrouter with common middleware. Full paths keep method
	// mismatches reported as 405.
	api := r.NewRoute().Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/api/datos-formulario", formDataHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/api/health", healthHandler.Get).Methods(http.MethodGet)

	return r
}
