package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/request"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/model"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/repository"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/validation"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependency.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
	}
}

// ListTransactions retrieves the full ledger sorted by date ascending,
// insertion order breaking ties.
func (s *TransactionService) ListTransactions() ([]model.Transaction, error) {
	return s.transactionRepo.ListTransactions()
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction builds the canonical record from a validated request and
// persists it with a freshly assigned UUID and timestamps.
// The request must have passed validation.ValidateTransaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.TransactionRequest) (*model.Transaction, error) {
	transaction := buildTransaction(req)
	transaction.ID = uuid.New().String()

	// Truncate to seconds: timestamps are persisted in RFC3339 and must
	// round-trip exactly.
	now := time.Now().UTC().Truncate(time.Second)
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	if err := s.transactionRepo.InsertTransaction(ctx, &transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &transaction, nil
}

// UpdateTransaction replaces an existing transaction with the canonical form
// of a validated request. ID and creation timestamp are preserved; derived
// fields are recomputed. Returns apperrors.ErrTransactionNotFound when the ID
// does not exist. The request must have passed validation.ValidateTransaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req request.TransactionRequest) (*model.Transaction, error) {
	existing, err := s.transactionRepo.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	transaction := buildTransaction(req)
	transaction.ID = existing.ID
	transaction.CreatedAt = existing.CreatedAt
	transaction.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	if err := s.transactionRepo.UpdateTransaction(ctx, transactionID, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// DeleteTransaction removes a transaction by its ID.
// Returns apperrors.ErrTransactionNotFound when the ID does not exist.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}

// buildTransaction normalizes a validated request into its canonical stored
// form: type and crypto uppercased, fees coerced, totalValue and netAmount
// recomputed. Derived values from the payload are never trusted.
func buildTransaction(req request.TransactionRequest) model.Transaction {
	amount := *req.Amount
	price := *req.Price
	fees := validation.FeeValue(req.Fees)
	transactionType := strings.ToUpper(req.Type)

	totalValue := amount * price
	netAmount := totalValue + fees
	if transactionType == model.TypeSell {
		netAmount = totalValue - fees
	}

	return model.Transaction{
		Date:       req.Date,
		Type:       transactionType,
		Crypto:     strings.ToUpper(req.Crypto),
		Amount:     amount,
		Price:      price,
		Fees:       fees,
		TotalValue: totalValue,
		NetAmount:  netAmount,
	}
}
