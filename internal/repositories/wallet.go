package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/logger"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// WalletWriteRepository handles wallet write operations
type WalletWriteRepository struct {
	db *sqlx.DB
}

func NewWalletWriteRepository(db *sqlx.DB) *WalletWriteRepository {
	return &WalletWriteRepository{db: db}
}

// Save inserts a new wallet row and fills in its creation timestamp.
func (r *WalletWriteRepository) Save(ctx context.Context, wallet *models.WalletDB) error {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, created_at, is_active)
		VALUES ($1, $2, $3, $4, NOW(), TRUE)
		RETURNING created_at
	`
	args := []any{wallet.WalletID, wallet.UserID, wallet.Currency, wallet.Balance}

	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet.CreatedAt, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return err
	}
	wallet.IsActive = true
	return nil
}

// UpdateBalance overwrites a wallet's balance.
func (r *WalletWriteRepository) UpdateBalance(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal) error {
	query := `
		UPDATE wallets
		SET balance = $2
		WHERE wallet_id = $1
	`
	args := []any{walletID, balance}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetByID returns a wallet by id, or nil when it does not exist.
func (r *WalletReadRepository) GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, currency, balance, created_at, is_active
		FROM wallets
		WHERE wallet_id = $1
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetPairForUpdate loads up to two wallets by id, taking row-level locks in
// deterministic id order so concurrent transfers on the same wallets serialize
// instead of deadlocking. Must run inside a transaction to be effective.
func (r *WalletReadRepository) GetPairForUpdate(ctx context.Context, firstID, secondID uuid.UUID) ([]models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, currency, balance, created_at, is_active
		FROM wallets
		WHERE wallet_id IN ($1, $2)
		ORDER BY wallet_id
		FOR UPDATE
	`

	var wallets []models.WalletDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &wallets, query, firstID, secondID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{firstID, secondID},
		"result", len(wallets),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return wallets, nil
}

// ExistsForUser reports whether the wallet belongs to the given user.
func (r *WalletReadRepository) ExistsForUser(ctx context.Context, userID, walletID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM wallets WHERE wallet_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, walletID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, userID},
		"result", exists,
		"error", err,
	)

	return exists, err
}
