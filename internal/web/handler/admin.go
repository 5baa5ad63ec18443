package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/services/enrollment"
	"github.com/torneokills/torneo/internal/web/middleware"
	"github.com/torneokills/torneo/internal/web/templates/layout"
	"github.com/torneokills/torneo/internal/web/templates/pages"
)

// AdminHandler handles the admin dashboard and its mutations
type AdminHandler struct {
	enrollmentService *enrollment.Service
	entryFeeUSD       string
	logger            *slog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(enrollmentService *enrollment.Service, entryFeeUSD string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		enrollmentService: enrollmentService,
		entryFeeUSD:       entryFeeUSD,
		logger:            logger,
	}
}

// View renders GET /admin
func (h *AdminHandler) View(w http.ResponseWriter, r *http.Request) {
	pending, err := h.enrollmentService.Pending(r.Context())
	if err != nil {
		renderError(w, r, h.logger, "Error al cargar pendientes", err, "/admin", "Reintentar")
		return
	}

	verified, err := h.enrollmentService.Verified(r.Context())
	if err != nil {
		renderError(w, r, h.logger, "Error al cargar verificados", err, "/admin", "Reintentar")
		return
	}

	data := pages.AdminData{
		PageData: layout.PageData{
			Title: "Panel de Admin",
			Flash: middleware.GetFlash(r.Context()),
		},
		EntryFeeUSD: h.entryFeeUSD,
		Pending:     pending,
		Verified:    verified,
	}
	render(w, r, h.logger, pages.Admin(data))
}

// VerifyPayment handles POST /verificar-pago
func (h *AdminHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, h.logger, "Error al verificar", err, "/admin", "Volver al Panel de Admin")
		return
	}

	id, err := enrollment.ParseEnrollmentID(r.FormValue("inscripcion_id"))
	if err != nil {
		renderError(w, r, h.logger, "Error al verificar", err, "/admin", "Volver al Panel de Admin")
		return
	}

	if err := h.enrollmentService.VerifyPayment(r.Context(), id); err != nil {
		renderError(w, r, h.logger, "Error al verificar", err, "/admin", "Volver al Panel de Admin")
		return
	}

	middleware.SetFlash(w, layout.FlashSuccess, "¡Pago verificado! Inscripción #"+strconv.FormatInt(id, 10))
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// SaveKills handles POST /guardar-kills
func (h *AdminHandler) SaveKills(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, h.logger, "Error al guardar", err, "/admin", "Volver al Panel de Admin")
		return
	}

	id, err := enrollment.ParseEnrollmentID(r.FormValue("inscripcion_id"))
	if err != nil {
		renderError(w, r, h.logger, "Error al guardar", err, "/admin", "Volver al Panel de Admin")
		return
	}

	kills, err := enrollment.ParseKills(r.FormValue("kills"))
	if err != nil {
		if errors.Is(err, model.ErrInvalidKills) {
			err = errors.New("las kills deben ser un número entero mayor o igual a 0")
		}
		renderError(w, r, h.logger, "Error al guardar", err, "/admin", "Volver al Panel de Admin")
		return
	}

	if err := h.enrollmentService.SetKills(r.Context(), id, kills); err != nil {
		renderError(w, r, h.logger, "Error al guardar", err, "/admin", "Volver al Panel de Admin")
		return
	}

	middleware.SetFlash(w, layout.FlashSuccess,
		"Kills guardadas: "+strconv.Itoa(kills)+" (Inscripción #"+strconv.FormatInt(id, 10)+")")
	http.Redirect(w, r, "/admin", http.StatusFound)
}
