package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/logger"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/ivmolchanov/walletsvc/internal/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrWalletCreation is returned when a wallet cannot be created because of
	// an unsupported currency or a negative initial balance.
	ErrWalletCreation = errors.New("unable to create wallet: negative balance or unknown currency")
	// ErrWalletOperation is returned when a balance mutation amount is not positive.
	ErrWalletOperation = errors.New("amount must be greater than zero")
	// ErrInsufficientFunds is returned when a debit exceeds the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBalanceCeiling is returned when a mutation would push the balance past the configured ceiling.
	ErrBalanceCeiling = errors.New("balance ceiling exceeded")
)

// WalletWriter defines the write operations the ledger needs.
type WalletWriter interface {
	Save(ctx context.Context, wallet *models.WalletDB) error                              // Inserts a new wallet row
	UpdateBalance(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal) error // Persists a new balance
}

// WalletService is the ledger: it owns wallet creation and balance mutation,
// and keeps every balance non-negative with exactly two fractional digits.
type WalletService struct {
	currencies models.CurrencySet
	writeRepo  WalletWriter
}

// NewWalletService creates a new WalletService.
func NewWalletService(currencies models.CurrencySet, writeRepo WalletWriter) *WalletService {
	return &WalletService{
		currencies: currencies,
		writeRepo:  writeRepo,
	}
}

// CreateWallet validates and persists a new wallet for the user. The initial
// balance is rounded to cents half-down before it is stored.
func (s *WalletService) CreateWallet(ctx context.Context, userID uuid.UUID, currency string, initialBalance decimal.Decimal) (*models.WalletDB, error) {
	if !s.currencies.Contains(currency) || initialBalance.IsNegative() {
		logger.Log.Errorw("invalid wallet creation request", "userID", userID, "currency", currency, "balance", initialBalance)
		return nil, ErrWalletCreation
	}

	balance := money.RoundAmount(initialBalance)
	if balance.GreaterThanOrEqual(money.MaxAmount) {
		logger.Log.Errorw("initial balance above ceiling", "userID", userID, "balance", balance)
		return nil, ErrWalletCreation
	}

	wallet := &models.WalletDB{
		WalletID: uuid.New(),
		UserID:   userID,
		Currency: currency,
		Balance:  balance,
	}
	if err := s.writeRepo.Save(ctx, wallet); err != nil {
		logger.Log.Errorw("failed to save wallet", "userID", userID, "currency", currency, "error", err)
		return nil, err
	}

	return wallet, nil
}

// IncreaseBalance credits the wallet and persists the new balance. The amount
// is rounded to cents half-down at this boundary.
func (s *WalletService) IncreaseBalance(ctx context.Context, wallet *models.WalletDB, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrWalletOperation
	}

	newBalance := wallet.Balance.Add(money.RoundAmount(amount))
	if newBalance.GreaterThanOrEqual(money.MaxAmount) {
		return ErrBalanceCeiling
	}

	if err := s.writeRepo.UpdateBalance(ctx, wallet.WalletID, newBalance); err != nil {
		logger.Log.Errorw("failed to persist balance increase", "walletID", wallet.WalletID, "amount", amount, "error", err)
		return err
	}
	wallet.Balance = newBalance
	return nil
}

// DecreaseBalance debits the wallet and persists the new balance. The amount
// is rounded to cents half-down; debiting more than the balance fails without
// touching the wallet.
func (s *WalletService) DecreaseBalance(ctx context.Context, wallet *models.WalletDB, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrWalletOperation
	}

	rounded := money.RoundAmount(amount)
	if rounded.GreaterThan(wallet.Balance) {
		return ErrInsufficientFunds
	}

	newBalance := wallet.Balance.Sub(rounded)
	if err := s.writeRepo.UpdateBalance(ctx, wallet.WalletID, newBalance); err != nil {
		logger.Log.Errorw("failed to persist balance decrease", "walletID", wallet.WalletID, "amount", amount, "error", err)
		return err
	}
	wallet.Balance = newBalance
	return nil
}
