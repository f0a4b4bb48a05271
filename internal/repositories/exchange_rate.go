package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ivmolchanov/walletsvc/internal/logger"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/jmoiron/sqlx"
)

// ExchangeRateWriteRepository appends exchange rate snapshots.
type ExchangeRateWriteRepository struct {
	db *sqlx.DB
}

func NewExchangeRateWriteRepository(db *sqlx.DB) *ExchangeRateWriteRepository {
	return &ExchangeRateWriteRepository{db: db}
}

// Save inserts a snapshot row. Snapshots are never updated or deleted.
func (r *ExchangeRateWriteRepository) Save(ctx context.Context, rate *models.ExchangeRateDB) error {
	query := `
		INSERT INTO exchange_rates (rate_id, currency, rates, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`
	args := []any{rate.RateID, rate.Currency, rate.Rates}

	err := sqlx.GetContext(ctx, executor(ctx, r.db), &rate.CreatedAt, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// ExchangeRateReadRepository reads exchange rate snapshots.
type ExchangeRateReadRepository struct {
	db *sqlx.DB
}

func NewExchangeRateReadRepository(db *sqlx.DB) *ExchangeRateReadRepository {
	return &ExchangeRateReadRepository{db: db}
}

// GetLatestByCurrency returns the most recently created snapshot for the base
// currency, or nil when none has been ingested yet.
func (r *ExchangeRateReadRepository) GetLatestByCurrency(ctx context.Context, currency string) (*models.ExchangeRateDB, error) {
	const query = `
		SELECT rate_id, currency, rates, created_at
		FROM exchange_rates
		WHERE currency = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rate models.ExchangeRateDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &rate, query, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{currency},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
