package request

// TransactionRequest is the payload for creating or replacing a transaction.
// Updates are full replacements, so the same shape serves both.
//
// Amount and Price are pointers to distinguish an absent field from zero.
// Fees is deliberately untyped: absent or non-numeric fees are coerced to
// zero by validation.FeeValue instead of being rejected.
type TransactionRequest struct {
	Date   string   `json:"date"`
	Type   string   `json:"type"`
	Crypto string   `json:"crypto"`
	Amount *float64 `json:"amount"`
	Price  *float64 `json:"price"`
	Fees   any      `json:"fees,omitempty"`
}
