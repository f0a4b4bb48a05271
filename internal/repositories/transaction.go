package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/logger"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/jmoiron/sqlx"
)

// TransactionWriteRepository inserts transfer records.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Save inserts the transaction row and fills in its creation timestamp.
// Transactions are created only inside a successful transfer and never change.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (transaction_id, sender_wallet_id, recipient_wallet_id, amount, exchange_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`
	args := []any{txn.TransactionID, txn.SenderWalletID, txn.RecipientWalletID, txn.Amount, txn.ExchangeRate}

	err := sqlx.GetContext(ctx, executor(ctx, r.db), &txn.CreatedAt, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// TransactionReadRepository lists transfer history.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByWalletID returns every transaction where the wallet is sender or
// recipient, oldest first.
func (r *TransactionReadRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, sender_wallet_id, recipient_wallet_id, amount, exchange_rate, created_at
		FROM transactions
		WHERE sender_wallet_id = $1 OR recipient_wallet_id = $1
		ORDER BY created_at
	`

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &txns, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}
