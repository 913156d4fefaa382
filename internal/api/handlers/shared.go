package handlers

import (
	"encoding/json"
	"net/http"
)

// parseJSON decodes the request body into the given payload type.
func parseJSON[T any](r *http.Request) (T, error) {
	var payload T
	err := json.NewDecoder(r.Body).Decode(&payload)
	return payload, err
}
