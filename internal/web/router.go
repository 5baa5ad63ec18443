package web

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/torneokills/torneo/internal/services/enrollment"
	"github.com/torneokills/torneo/internal/services/payout"
	"github.com/torneokills/torneo/internal/services/registration"
	"github.com/torneokills/torneo/internal/storage"
	"github.com/torneokills/torneo/internal/web/handler"
	"github.com/torneokills/torneo/internal/web/middleware"
	"github.com/torneokills/torneo/internal/web/static"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger              *slog.Logger
	Storage             storage.Storage
	RegistrationService *registration.Service
	EnrollmentService   *enrollment.Service
	PayoutService       *payout.Service
	// StaticFiles overrides the embedded form assets when set
	StaticFiles fs.FS
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	files := cfg.StaticFiles
	if files == nil {
		files = static.FS
	}
	entryFeeUSD := payout.FormatAmount(cfg.PayoutService.Config().EntryFeeUSD)

	// Create handlers
	homeHandler := handler.NewHomeHandler(files)
	registrationHandler := handler.NewRegistrationHandler(cfg.RegistrationService, entryFeeUSD, cfg.Logger)
	adminHandler := handler.NewAdminHandler(cfg.EnrollmentService, entryFeeUSD, cfg.Logger)
	reportHandler := handler.NewReportHandler(cfg.PayoutService, cfg.Logger)
	tournamentHandler := handler.NewTournamentHandler(cfg.Storage, cfg.Logger)

	// Static files
	r.PathPrefix("/static/").Handler(homeHandler.Static()).Methods(http.MethodGet)

	// Pages
	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/crear-torneo", tournamentHandler.Create).Methods(http.MethodGet)
	pages.HandleFunc("/registrar-jugador", registrationHandler.Register).Methods(http.MethodPost)
	pages.HandleFunc("/reporte", reportHandler.View).Methods(http.MethodGet)

	// Admin
	pages.HandleFunc("/admin", adminHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/verificar-pago", adminHandler.VerifyPayment).Methods(http.MethodPost)
	pages.HandleFunc("/guardar-kills", adminHandler.SaveKills).Methods(http.MethodPost)

	return r
}
