package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/request"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/response"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/apperrors"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/service"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions handles GET requests to retrieve the full ledger,
// sorted by date ascending with insertion-order tie-break.
//
// Endpoint: GET /api/transactions
// Response: 200 OK with array of Transaction in the data field
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, _ *http.Request) {
	transactions, err := h.transactionService.ListTransactions()
	if err != nil {
		log.Error().Err(err).Msg("listing transactions failed")
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error())
		return
	}

	response.RespondData(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST requests to create a new transaction.
// Validates the request body, computes derived fields and persists the record.
//
// Endpoint: POST /api/transactions
// Request Body: TransactionRequest (date, type, crypto, amount, price, fees)
// Response: 201 Created with the stored Transaction, including its assigned ID
// Error: 400 Bad Request if validation fails or the request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("creating transaction failed")
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateTransaction.Error())
		return
	}

	response.RespondData(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to replace an existing transaction.
// The body carries the full record; derived fields are recomputed and the
// original ID and creation timestamp are preserved.
//
// Endpoint: PUT /api/transactions/{uuid}
// Request Body: TransactionRequest (date, type, crypto, amount, price, fees)
// Response: 200 OK with the updated Transaction
// Error: 400 Bad Request if the ID is malformed (validated by middleware),
// the body is invalid, or validation fails
// Error: 404 Not Found if the transaction does not exist
// Error: 500 Internal Server Error if the update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.TransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(r.Context(), transactionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error())
			return
		}

		log.Error().Err(err).Str("id", transactionID).Msg("updating transaction failed")
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateTransaction.Error())
		return
	}

	response.RespondData(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
//
// Endpoint: DELETE /api/transactions/{uuid}
// Response: 200 OK with a confirmation message
// Error: 400 Bad Request if the ID is malformed (validated by middleware)
// Error: 404 Not Found if the transaction does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	err := h.transactionService.DeleteTransaction(r.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error())
			return
		}

		log.Error().Err(err).Str("id", transactionID).Msg("deleting transaction failed")
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteTransaction.Error())
		return
	}

	response.RespondMessage(w, http.StatusOK, "transaction deleted successfully")
}
