package middleware

import (
	"log/slog"
	"net/http"

	"github.com/torneokills/torneo/internal/middleware"
)

// Logging creates logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID tags API requests with a request id
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
