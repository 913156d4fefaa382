package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/model"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/testutil"
)

type statisticsEnvelope struct {
	Success bool             `json:"success"`
	Data    model.Statistics `json:"data"`
	Error   string           `json:"error"`
}

func TestStatisticsHandler_GetStatistics(t *testing.T) {
	t.Run("returns zero statistics for empty ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewStatisticsHandler(testutil.NewTestStatisticsService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
		w := httptest.NewRecorder()

		handler.GetStatistics(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response statisticsEnvelope
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if !response.Success {
			t.Error("Expected success envelope")
		}
		if response.Data.TotalTransactions != 0 {
			t.Errorf("Expected 0 transactions, got %d", response.Data.TotalTransactions)
		}
		if response.Data.RealizedPL != 0 {
			t.Errorf("Expected realizedPL 0, got %f", response.Data.RealizedPL)
		}
		if response.Data.CryptoBalances == nil {
			t.Error("Expected empty balances object, got null")
		}
	})

	t.Run("aggregates buys and sells across the ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewStatisticsHandler(testutil.NewTestStatisticsService(t, db))

		testutil.NewTransaction().Buy().WithAmount(1.5).WithPrice(20000).WithFees(10).Build(t, db)
		testutil.NewTransaction().Sell().WithAmount(0.5).WithPrice(25000).WithFees(5).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
		w := httptest.NewRecorder()

		handler.GetStatistics(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response statisticsEnvelope
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		stats := response.Data
		if stats.TotalInvested != 30000 {
			t.Errorf("Expected totalInvested 30000, got %f", stats.TotalInvested)
		}
		if stats.TotalProceeds != 12500 {
			t.Errorf("Expected totalProceeds 12500, got %f", stats.TotalProceeds)
		}
		if stats.TotalFees != 15 {
			t.Errorf("Expected totalFees 15, got %f", stats.TotalFees)
		}
		if stats.RealizedPL != -17515 {
			t.Errorf("Expected realizedPL -17515, got %f", stats.RealizedPL)
		}
		if stats.TotalTransactions != 2 {
			t.Errorf("Expected 2 transactions, got %d", stats.TotalTransactions)
		}
		if stats.CryptoBalances["BTC"] != 1.0 {
			t.Errorf("Expected BTC balance 1.0, got %f", stats.CryptoBalances["BTC"])
		}
	})

	t.Run("repeated reads return identical bodies", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewStatisticsHandler(testutil.NewTestStatisticsService(t, db))

		testutil.CreateTransactions(t, db, 3)

		bodies := make([]string, 2)
		for i := range bodies {
			req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
			w := httptest.NewRecorder()
			handler.GetStatistics(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
			}
			bodies[i] = w.Body.String()
		}

		if bodies[0] != bodies[1] {
			t.Errorf("Expected identical responses, got:\n%s\n%s", bodies[0], bodies[1])
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewStatisticsHandler(testutil.NewTestStatisticsService(t, db))
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
		w := httptest.NewRecorder()

		handler.GetStatistics(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}

		var response statisticsEnvelope
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Success {
			t.Error("Expected failure envelope")
		}
		if response.Error == "" {
			t.Error("Expected error message in envelope")
		}
	})
}
