// Package response provides utilities for sending consistent HTTP responses.
// Every response uses the same JSON envelope: {"success": true, "data": ...}
// on success, {"success": false, "error": "<message>"} on failure.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Envelope is the standard response wrapper returned by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondData sends a success envelope carrying the given payload.
func RespondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, Envelope{Success: true, Data: data})
}

// RespondMessage sends a success envelope carrying a human-readable message
// instead of a data payload (used for deletions).
func RespondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Envelope{Success: true, Message: message})
}

// RespondError sends a failure envelope with the given status code.
// The message should be user-friendly; internal error detail belongs in logs,
// never in the response body.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, err.Error())
//	response.RespondError(w, http.StatusNotFound, "transaction not found")
func RespondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Envelope{Success: false, Error: message})
}

// respondJSON sends a JSON response with the given status code.
// Logs encoding errors but does not fail the response.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}
