package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values,
// keyed by their uppercase form.
var ValidTransactionType = map[string]bool{
	"BUY": true, "SELL": true,
}

// ValidateTransaction validates a transaction create/replace request.
//
// Required fields:
//   - date: must be in YYYY-MM-DD or RFC3339 format
//   - type: must be BUY or SELL (any casing)
//   - crypto: must be non-blank
//   - amount: must be a positive number
//   - price: must be a positive number
//
// Fees are optional; a non-numeric fees value is coerced to 0 rather than
// rejected, but a negative numeric fee fails validation.
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateTransaction(req request.TransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := ParseDate(req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[strings.ToUpper(req.Type)] {
		errors["type"] = fmt.Sprintf("type must be BUY or SELL, got: %s", req.Type)
	}

	if strings.TrimSpace(req.Crypto) == "" {
		errors["crypto"] = "crypto is required"
	}

	if req.Amount == nil {
		errors["amount"] = "amount is required"
	} else if *req.Amount <= 0.0 {
		errors["amount"] = "amount must be a positive number"
	}

	if req.Price == nil {
		errors["price"] = "price is required"
	} else if *req.Price <= 0.0 {
		errors["price"] = "price must be a positive number"
	}

	if FeeValue(req.Fees) < 0 {
		errors["fees"] = "fees cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// FeeValue coerces the fees payload value to a float64.
// Absent or non-numeric fees are treated as zero, not as an error.
func FeeValue(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case string:
		if parsed, err := strconv.ParseFloat(f, 64); err == nil {
			return parsed
		}
	}
	return 0
}
