package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/ivmolchanov/walletsvc/internal/services"
	"github.com/shopspring/decimal"
)

// WalletTokener extracts the acting user from the request token.
type WalletTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// WalletCreator opens a new wallet for the acting user.
type WalletCreator interface {
	CreateWallet(ctx context.Context, userID uuid.UUID, currency string, initialBalance decimal.Decimal) (*models.WalletDB, error)
}

// CreateWalletRequest represents the JSON body for wallet creation
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// Wallet currency
	// required: true
	// example: USD
	Currency string `json:"currency"`

	// Initial balance
	// required: true
	// example: 100.0
	InitBalance float64 `json:"init_balance"`
}

// CreateWalletResponse represents a successful wallet creation response
// swagger:model CreateWalletResponse
type CreateWalletResponse struct {
	// Created wallet
	Wallet models.WalletDB `json:"wallet"`
}

// CreateWalletErrorResponse represents an error response for wallet creation
// swagger:model CreateWalletErrorResponse
type CreateWalletErrorResponse struct {
	// Error message
	// example: Unable to create wallet with negative balance or unknown currency
	Error string `json:"error"`
}

// NewCreateWalletHandler handles wallet creation.
// @Summary Create a wallet
// @Description Opens a new wallet for the authenticated user.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletRequest true "Create Wallet Request"
// @Success 201 {object} handlers.CreateWalletResponse "Wallet created"
// @Failure 400 {object} handlers.CreateWalletErrorResponse "Invalid currency or balance"
// @Failure 401 {object} handlers.CreateWalletErrorResponse "Unauthorized"
// @Router /wallets [post]
// @Security BearerAuth
func NewCreateWalletHandler(tokener WalletTokener, creator WalletCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateWalletErrorResponse{Error: "unauthorized"})
			return
		}

		var req CreateWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateWalletErrorResponse{Error: "invalid request body"})
			return
		}

		wallet, err := creator.CreateWallet(ctx, userID, req.Currency, decimal.NewFromFloat(req.InitBalance))
		if err != nil {
			if errors.Is(err, services.ErrWalletCreation) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateWalletErrorResponse{Error: err.Error()})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateWalletErrorResponse{Error: "internal error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateWalletResponse{Wallet: *wallet})
	}
}

// userIDFromRequest resolves the acting user from the request's bearer token.
func userIDFromRequest(ctx context.Context, tokener WalletTokener, r *http.Request) (uuid.UUID, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	return tokener.GetUserID(ctx, tokenStr)
}
