package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/torneokills/torneo/internal/web/middleware"
	"github.com/torneokills/torneo/internal/web/templates/layout"
	"github.com/torneokills/torneo/internal/web/templates/pages"
)

// render writes a page with status 200
func render(w http.ResponseWriter, r *http.Request, logger *slog.Logger, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		logger.Error("failed to render page", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderError shows a failure inline instead of redirecting. The status
// stays 200 so the admin sees the message in place.
func renderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, heading string, err error, backHref, backLabel string) {
	data := pages.ErrorData{
		PageData: layout.PageData{
			Title: "Error",
			Flash: middleware.GetFlash(r.Context()),
		},
		Heading:   heading,
		BackHref:  backHref,
		BackLabel: backLabel,
	}
	if err != nil {
		data.Detail = err.Error()
	}
	render(w, r, logger, pages.Error(data))
}
