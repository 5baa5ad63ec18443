package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
	"github.com/torneokills/torneo/internal/web/middleware"
	"github.com/torneokills/torneo/internal/web/templates/layout"
	"github.com/torneokills/torneo/internal/web/templates/pages"
)

// TournamentHandler handles the debug tournament insert
type TournamentHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewTournamentHandler creates a new TournamentHandler
func NewTournamentHandler(storage storage.Storage, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		storage: storage,
		logger:  logger,
	}
}

type tournamentRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// Create handles GET /crear-torneo[?nombre=...]
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("nombre"))
	if name == "" {
		name = model.DefaultTournamentName
	}

	tournament := &model.Tournament{Name: name}
	if err := h.storage.CreateTournament(r.Context(), tournament); err != nil {
		h.logger.Error("failed to create tournament", slog.String("error", err.Error()))
		renderError(w, r, h.logger, "¡Error al crear el torneo!", err, "/", "Volver al inicio")
		return
	}
	h.logger.Info("tournament created", slog.Int64("tournament_id", tournament.ID))

	row, err := json.MarshalIndent(tournamentRow{
		ID:        tournament.ID,
		Name:      tournament.Name,
		CreatedAt: tournament.CreatedAt,
	}, "", "  ")
	if err != nil {
		renderError(w, r, h.logger, "¡Error al crear el torneo!", err, "/", "Volver al inicio")
		return
	}

	data := pages.TournamentCreatedData{
		PageData: layout.PageData{
			Title: "Torneo creado",
			Flash: middleware.GetFlash(r.Context()),
		},
		RowJSON: string(row),
	}
	render(w, r, h.logger, pages.TournamentCreated(data))
}
