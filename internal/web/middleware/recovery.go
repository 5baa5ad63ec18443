package middleware

import (
	"log/slog"
	"net/http"

	"github.com/torneokills/torneo/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>Error</title></head>
<body>
<h1>Error interno del servidor</h1>
<p>Algo salió mal. Intenta de nuevo más tarde.</p>
<p><a href="/">Volver al inicio</a></p>
</body>
</html>`))
}
