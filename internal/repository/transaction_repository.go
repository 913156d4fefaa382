package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/apperrors"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// It owns record identity and persistence; identifiers are UUIDs assigned by
// the service layer and enforced unique by the primary key.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, date, type, crypto, amount, price, fees, total_value, net_amount, created_at, updated_at`

// ListTransactions retrieves the full ledger sorted by date ascending.
// Ties on date are broken by insertion order: sqlite assigns rowids
// monotonically on insert and UPDATE preserves them.
func (r *TransactionRepository) ListTransactions() ([]model.Transaction, error) {
	listQuery := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		ORDER BY date ASC, rowid ASC
	`

	rows, err := r.db.Query(listQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound when no row matches.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	getQuery := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		WHERE id = ?
	`

	row := r.db.QueryRow(getQuery, transactionID)

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}

// InsertTransaction persists a new transaction record.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	insertQuery := `
		INSERT INTO "transaction" (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, insertQuery,
		t.ID,
		t.Date,
		t.Type,
		t.Crypto,
		t.Amount,
		t.Price,
		t.Fees,
		t.TotalValue,
		t.NetAmount,
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// UpdateTransaction replaces all mutable fields of an existing transaction.
// ID and created_at are preserved. Returns apperrors.ErrTransactionNotFound
// when the ID does not exist.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, t *model.Transaction) error {
	updateQuery := `
		UPDATE "transaction"
		SET date = ?, type = ?, crypto = ?, amount = ?, price = ?, fees = ?,
		    total_value = ?, net_amount = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, updateQuery,
		t.Date,
		t.Type,
		t.Crypto,
		t.Amount,
		t.Price,
		t.Fees,
		t.TotalValue,
		t.NetAmount,
		t.UpdatedAt.UTC().Format(time.RFC3339),
		transactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction by its ID.
// Returns apperrors.ErrTransactionNotFound when the ID does not exist.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	deleteQuery := `DELETE FROM "transaction" WHERE id = ?`

	result, err := r.db.ExecContext(ctx, deleteQuery, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID,
		&t.Date,
		&t.Type,
		&t.Crypto,
		&t.Amount,
		&t.Price,
		&t.Fees,
		&t.TotalValue,
		&t.NetAmount,
		&createdAtStr,
		&updatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return t, err
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return t, fmt.Errorf("failed to parse created_at: %w", err)
	}

	t.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil || t.UpdatedAt.IsZero() {
		return t, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return t, nil
}
