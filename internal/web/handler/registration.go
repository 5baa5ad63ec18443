package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/torneokills/torneo/internal/services/registration"
	"github.com/torneokills/torneo/internal/web/middleware"
	"github.com/torneokills/torneo/internal/web/templates/layout"
	"github.com/torneokills/torneo/internal/web/templates/pages"
)

// RegistrationHandler handles the entry form submission
type RegistrationHandler struct {
	registrationService *registration.Service
	entryFeeUSD         string
	logger              *slog.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrationService *registration.Service, entryFeeUSD string, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		entryFeeUSD:         entryFeeUSD,
		logger:              logger,
	}
}

// Register handles POST /registrar-jugador
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, h.logger, "Datos del formulario inválidos", err, "/", "Volver al inicio")
		return
	}

	in := registration.Input{
		FullName:     r.FormValue("nombre_completo"),
		GameID:       r.FormValue("cod_id"),
		Email:        r.FormValue("email"),
		NationalID:   r.FormValue("cedula"),
		Phone:        r.FormValue("telefono"),
		Bank:         r.FormValue("banco"),
		TournamentID: registration.ParseTournamentID(r.FormValue("torneo_id")),
	}

	result, err := h.registrationService.Register(r.Context(), in)
	if err != nil {
		heading := "Error al registrar"
		var stepErr *registration.StepError
		if errors.As(err, &stepErr) {
			switch stepErr.Step {
			case registration.StepPlayer:
				heading = "Error al crear el jugador:"
			case registration.StepEnrollment:
				heading = "Error al crear la inscripción:"
			}
		}
		renderError(w, r, h.logger, heading, err, "/", "Volver al inicio")
		return
	}

	data := pages.RegisteredData{
		PageData: layout.PageData{
			Title: "Inscripción exitosa",
			Flash: middleware.GetFlash(r.Context()),
		},
		PlayerName:  result.Player.FullName,
		EntryFeeUSD: h.entryFeeUSD,
		EntryFeeBs:  strings.TrimSpace(r.FormValue("montoBs")),
	}
	render(w, r, h.logger, pages.Registered(data))
}
