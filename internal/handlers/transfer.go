package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/ivmolchanov/walletsvc/internal/services"
	"github.com/shopspring/decimal"
)

// Transferer moves funds between wallets.
type Transferer interface {
	Transfer(ctx context.Context, actingUserID, senderWalletID, recipientWalletID uuid.UUID, amount decimal.Decimal) (*models.TransactionDB, error)
}

// TransferRequest represents the JSON body for a money transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Sender wallet id
	// required: true
	Sender uuid.UUID `json:"sender"`

	// Recipient wallet id
	// required: true
	Recipient uuid.UUID `json:"recipient"`

	// Amount to transfer, in the sender wallet's currency
	// required: true
	// example: 10.0
	Amount float64 `json:"amount"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// example: You successfully transmitted 10.00
	Message string `json:"message"`

	// Committed transaction
	Transaction models.TransactionDB `json:"transaction"`
}

// TransferErrorResponse represents an error response for a transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// example: Insufficient funds
	Error string `json:"error"`
}

// NewTransferHandler handles money transfers between wallets.
// @Summary Transfer money
// @Description Atomically debits the sender wallet and credits the recipient wallet, converting currency when needed.
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer committed"
// @Failure 400 {object} handlers.TransferErrorResponse "Invalid amount or insufficient funds"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransferErrorResponse "Wallet not found"
// @Router /transfer [post]
// @Security BearerAuth
func NewTransferHandler(tokener WalletTokener, transferer Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "unauthorized"})
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "invalid request body"})
			return
		}

		txn, err := transferer.Transfer(ctx, userID, req.Sender, req.Recipient, decimal.NewFromFloat(req.Amount))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWalletNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, services.ErrUnauthorizedWallet):
				w.WriteHeader(http.StatusForbidden)
			case errors.Is(err, services.ErrWalletOperation),
				errors.Is(err, services.ErrInsufficientFunds),
				errors.Is(err, services.ErrBalanceCeiling),
				errors.Is(err, services.ErrNoRateAvailable),
				errors.Is(err, services.ErrInvalidCurrencyPair):
				w.WriteHeader(http.StatusBadRequest)
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "internal error"})
				return
			}
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: err.Error()})
			return
		}

		json.NewEncoder(w).Encode(TransferResponse{
			Message:     fmt.Sprintf("You successfully transmitted %s", txn.Amount),
			Transaction: *txn,
		})
	}
}
