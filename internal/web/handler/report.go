package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/torneokills/torneo/internal/services/payout"
	"github.com/torneokills/torneo/internal/services/rate"
	"github.com/torneokills/torneo/internal/web/middleware"
	"github.com/torneokills/torneo/internal/web/templates/layout"
	"github.com/torneokills/torneo/internal/web/templates/pages"
)

// ReportHandler renders the payout report
type ReportHandler struct {
	payoutService *payout.Service
	logger        *slog.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(payoutService *payout.Service, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		payoutService: payoutService,
		logger:        logger,
	}
}

// View renders GET /reporte
func (h *ReportHandler) View(w http.ResponseWriter, r *http.Request) {
	report, err := h.payoutService.Report(r.Context())
	if err != nil {
		if errors.Is(err, rate.ErrRateUnavailable) {
			renderError(w, r, h.logger, "Error al obtener la Tasa BCV.", nil, "/admin", "Volver al Panel de Admin")
			return
		}
		renderError(w, r, h.logger, "Error al cargar reporte", err, "/admin", "Volver al Panel de Admin")
		return
	}

	data := pages.ReportData{
		PageData: layout.PageData{
			Title: "Reporte de Pagos",
			Flash: middleware.GetFlash(r.Context()),
		},
		Report: report,
	}
	render(w, r, h.logger, pages.Report(data))
}
