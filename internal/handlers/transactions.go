package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/ivmolchanov/walletsvc/internal/services"
)

// TransactionLister lists the transactions touching a wallet.
type TransactionLister interface {
	ListTransactions(ctx context.Context, actingUserID, walletID uuid.UUID) ([]models.TransactionDB, error)
}

// TransactionsResponse represents a wallet transaction history response
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Transactions where the wallet is sender or recipient
	Transactions []models.TransactionDB `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for history queries
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// example: This is not your wallet
	Error string `json:"error"`
}

// NewTransactionsHandler handles wallet transaction history requests.
// @Summary List wallet transactions
// @Description Returns every transaction where the wallet is sender or recipient, oldest first.
// @Tags transfer
// @Produce json
// @Param wallet_id path string true "Wallet id"
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.TransactionsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TransactionsErrorResponse "Wallet not owned by the user"
// @Router /wallets/{wallet_id}/transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(tokener WalletTokener, lister TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "unauthorized"})
			return
		}

		walletID, err := uuid.Parse(chi.URLParam(r, "wallet_id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "invalid wallet id"})
			return
		}

		txns, err := lister.ListTransactions(ctx, userID, walletID)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorizedWallet) {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: err.Error()})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "internal error"})
			return
		}

		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: txns})
	}
}
