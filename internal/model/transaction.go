package model

import "time"

// Transaction type values. Stored uppercase; incoming payloads are
// case-normalized before persistence.
const (
	TypeBuy  = "BUY"
	TypeSell = "SELL"
)

// Transaction represents a single buy or sell trade in the ledger.
// TotalValue and NetAmount are derived from amount, price, fees and type
// at write time and are never taken from client input.
type Transaction struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Type       string    `json:"type"`
	Crypto     string    `json:"crypto"`
	Amount     float64   `json:"amount"`
	Price      float64   `json:"price"`
	Fees       float64   `json:"fees"`
	TotalValue float64   `json:"totalValue"`
	NetAmount  float64   `json:"netAmount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
