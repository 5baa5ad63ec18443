package handler

import (
	"log/slog"
	"net/http"

	"github.com/torneokills/torneo/internal/api/response"
	"github.com/torneokills/torneo/internal/services/payout"
)

// FormDataHandler serves the data the entry form needs
type FormDataHandler struct {
	payoutService *payout.Service
	logger        *slog.Logger
}

// NewFormDataHandler creates a new FormDataHandler
func NewFormDataHandler(payoutService *payout.Service, logger *slog.Logger) *FormDataHandler {
	return &FormDataHandler{
		payoutService: payoutService,
		logger:        logger,
	}
}

// Get handles GET /api/datos-formulario
func (h *FormDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.payoutService.FormData(r.Context())
	if err != nil {
		h.logger.Error("failed to load form data", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FormDataFromService(data))
}
