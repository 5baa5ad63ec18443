package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/torneokills/torneo/internal/services/rate"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeRateUnavailable  = "RATE_UNAVAILABLE"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

const messageInternalError = "Error interno del servidor"

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// The form cannot be rendered without a rate, so this is a server failure
	case errors.Is(err, rate.ErrRateUnavailable):
		return &httpError{http.StatusInternalServerError, APIError{CodeRateUnavailable, "Error al obtener la tasa BCV"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, messageInternalError}}
	}
}

// NewStoreUnavailableError is returned by the health check when the store does not answer
func NewStoreUnavailableError() error {
	return &httpError{http.StatusServiceUnavailable, APIError{CodeStoreUnavailable, "La base de datos no responde"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, messageInternalError}}
}
