package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/repository"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/service"
)

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
	)
}

func NewTestStatisticsService(t *testing.T, db *sql.DB) *service.StatisticsService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewStatisticsService(
		transactionRepo,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
