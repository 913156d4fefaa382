package testutil

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
// Derived fields (totalValue, netAmount) are recomputed in Build from whatever
// the builder holds, so tests never have to keep them in sync by hand.
//
// Example usage:
//
//	// Simple creation with defaults (BUY 1.5 BTC @ 20000, fees 10)
//	tx := testutil.NewTransaction().Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    Sell().
//	    WithCrypto("ETH").
//	    WithAmount(2).
//	    WithPrice(1500).
//	    Build(t, db)
type TransactionBuilder struct {
	ID     string
	Date   string
	Type   string
	Crypto string
	Amount float64
	Price  float64
	Fees   float64
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:     MakeID(),
		Date:   "2024-01-15",
		Type:   model.TypeBuy,
		Crypto: "BTC",
		Amount: 1.5,
		Price:  20000,
		Fees:   10,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets a custom trade date.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithCrypto sets a custom asset symbol.
func (b *TransactionBuilder) WithCrypto(crypto string) *TransactionBuilder {
	b.Crypto = crypto
	return b
}

// WithAmount sets a custom amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithPrice sets a custom unit price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// WithFees sets a custom fee.
func (b *TransactionBuilder) WithFees(fees float64) *TransactionBuilder {
	b.Fees = fees
	return b
}

// Buy marks the transaction as a buy.
func (b *TransactionBuilder) Buy() *TransactionBuilder {
	b.Type = model.TypeBuy
	return b
}

// Sell marks the transaction as a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TypeSell
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	totalValue := b.Amount * b.Price
	netAmount := totalValue + b.Fees
	if b.Type == model.TypeSell {
		netAmount = totalValue - b.Fees
	}

	now := time.Now().UTC().Truncate(time.Second)

	tx := model.Transaction{
		ID:         b.ID,
		Date:       b.Date,
		Type:       b.Type,
		Crypto:     strings.ToUpper(b.Crypto),
		Amount:     b.Amount,
		Price:      b.Price,
		Fees:       b.Fees,
		TotalValue: totalValue,
		NetAmount:  netAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	query := `
		INSERT INTO "transaction" (id, date, type, crypto, amount, price, fees, total_value, net_amount, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		tx.ID, tx.Date, tx.Type, tx.Crypto, tx.Amount, tx.Price, tx.Fees,
		tx.TotalValue, tx.NetAmount,
		tx.CreatedAt.Format(time.RFC3339), tx.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return tx
}

// CreateTransactions creates count transactions with defaults.
//
// Example usage:
//
//	transactions := testutil.CreateTransactions(t, db, 5)
func CreateTransactions(t *testing.T, db *sql.DB, count int) []model.Transaction {
	t.Helper()

	transactions := make([]model.Transaction, count)
	for i := 0; i < count; i++ {
		transactions[i] = NewTransaction().Build(t, db)
	}
	return transactions
}
