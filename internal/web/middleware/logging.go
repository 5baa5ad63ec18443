package middleware

import (
	"log/slog"
	"net/http"

	"github.com/torneokills/torneo/internal/middleware"
)

// Logging creates logging middleware for the web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID tags page requests with a request id
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
