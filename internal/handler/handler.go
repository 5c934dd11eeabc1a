package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lojinha/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps domain sentinels to HTTP status codes, falling back
// to a generic 500 so repository errors never leak to the client.
func writeDomainError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	switch {
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrBannerNotFound):
		writeError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, model.ErrEmptyCart),
		errors.Is(err, model.ErrMissingContact),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, model.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error(), logger)
	default:
		logger.Error().Err(err).Msg("unhandled service error")
		writeError(w, http.StatusInternalServerError, fallback, logger)
	}
}

// decodeJSON decodes a request body into dst, rejecting unknown garbage
// with a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", logger)
		return false
	}
	return true
}
