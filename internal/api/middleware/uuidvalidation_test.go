package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/testutil"
)

func TestValidateUUIDMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("passes through valid UUID", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/transactions/"+testutil.MakeID(),
			map[string]string{"uuid": testutil.MakeID()},
		)
		w := httptest.NewRecorder()

		ValidateUUIDMiddleware(okHandler).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects malformed UUID", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/transactions/not-a-uuid",
			map[string]string{"uuid": "not-a-uuid"},
		)
		w := httptest.NewRecorder()

		ValidateUUIDMiddleware(okHandler).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		var response struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Success {
			t.Error("Expected failure envelope")
		}
		if response.Error != "invalid transaction ID" {
			t.Errorf("Expected error 'invalid transaction ID', got %q", response.Error)
		}
	})

	t.Run("rejects missing UUID parameter", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/transactions/",
			map[string]string{},
		)
		w := httptest.NewRecorder()

		ValidateUUIDMiddleware(okHandler).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
