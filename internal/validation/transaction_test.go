package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/request"
)

func floatPtr(v float64) *float64 { return &v }

func validRequest() request.TransactionRequest {
	return request.TransactionRequest{
		Date:   "2024-01-15",
		Type:   "buy",
		Crypto: "btc",
		Amount: floatPtr(1.5),
		Price:  floatPtr(20000),
		Fees:   float64(10),
	}
}

func TestValidateTransactionValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateTransaction(validRequest()))
}

func TestValidateTransactionDatetimeDate(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Date = "2024-01-15T10:30:00Z"
	assert.NoError(t, ValidateTransaction(req))
}

func TestValidateTransactionMissingFields(t *testing.T) {
	t.Parallel()

	err := ValidateTransaction(request.TransactionRequest{})
	assert.Error(t, err)

	var vErr *Error
	assert.ErrorAs(t, err, &vErr)
	for _, field := range []string{"date", "type", "crypto", "amount", "price"} {
		assert.Contains(t, vErr.Fields, field)
	}
}

func TestValidateTransactionInvalidDate(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Date = "15-01-2024"

	err := ValidateTransaction(req)
	var vErr *Error
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "date")
}

func TestValidateTransactionInvalidType(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Type = "HODL"

	err := ValidateTransaction(req)
	var vErr *Error
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "type")
}

func TestValidateTransactionTypeCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{"buy", "Buy", "BUY", "sell", "SeLL"} {
		req := validRequest()
		req.Type = typ
		assert.NoError(t, ValidateTransaction(req), "type %q should be accepted", typ)
	}
}

func TestValidateTransactionNonPositiveNumbers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*request.TransactionRequest)
		field  string
	}{
		{"zero amount", func(r *request.TransactionRequest) { r.Amount = floatPtr(0) }, "amount"},
		{"negative amount", func(r *request.TransactionRequest) { r.Amount = floatPtr(-1) }, "amount"},
		{"zero price", func(r *request.TransactionRequest) { r.Price = floatPtr(0) }, "price"},
		{"negative price", func(r *request.TransactionRequest) { r.Price = floatPtr(-20000) }, "price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := ValidateTransaction(req)
			var vErr *Error
			assert.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tc.field)
		})
	}
}

func TestValidateTransactionFeesLenient(t *testing.T) {
	t.Parallel()

	// Absent and non-numeric fees are accepted and coerced to zero.
	req := validRequest()
	req.Fees = nil
	assert.NoError(t, ValidateTransaction(req))

	req.Fees = "not a number"
	assert.NoError(t, ValidateTransaction(req))
}

func TestValidateTransactionNegativeFees(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Fees = float64(-5)

	err := ValidateTransaction(req)
	var vErr *Error
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "fees")
}

func TestFeeValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.5, FeeValue(float64(10.5)))
	assert.Equal(t, 2.5, FeeValue("2.5"))
	assert.Equal(t, 0.0, FeeValue(nil))
	assert.Equal(t, 0.0, FeeValue("garbage"))
	assert.Equal(t, 0.0, FeeValue(true))
	assert.Equal(t, -3.0, FeeValue(float64(-3)))
}
