package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/ivmolchanov/walletsvc/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestExchangeRateWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	now := time.Now()
	snapshot := &models.ExchangeRateDB{
		RateID:   uuid.New(),
		Currency: models.USD,
		Rates:    models.RatesByCurrency{models.RUB: 63.54563},
	}

	mock.ExpectQuery("INSERT INTO exchange_rates").
		WithArgs(snapshot.RateID, snapshot.Currency, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewExchangeRateWriteRepository(db)
	err := repo.Save(ctx, snapshot)

	assert.NoError(t, err)
	assert.Equal(t, now, snapshot.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateReadRepository_GetLatestByCurrency(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	rateID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT rate_id, currency, rates, created_at FROM exchange_rates").
		WithArgs(models.USD).
		WillReturnRows(sqlmock.NewRows([]string{"rate_id", "currency", "rates", "created_at"}).
			AddRow(rateID.String(), models.USD, []byte(`{"RUB":63.54563,"EUR":0.91}`), now))

	repo := NewExchangeRateReadRepository(db)
	snapshot, err := repo.GetLatestByCurrency(ctx, models.USD)

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, rateID, snapshot.RateID)
	assert.Equal(t, 63.54563, snapshot.Rates[models.RUB])
	assert.Equal(t, 0.91, snapshot.Rates[models.EUR])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateReadRepository_GetLatestByCurrency_NoSnapshot(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT rate_id, currency, rates, created_at FROM exchange_rates").
		WithArgs(models.GBP).
		WillReturnError(sql.ErrNoRows)

	repo := NewExchangeRateReadRepository(db)
	snapshot, err := repo.GetLatestByCurrency(ctx, models.GBP)

	assert.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateReadRepository_GetLatestByCurrency_Error(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	dbErr := errors.New("db down")
	mock.ExpectQuery("SELECT rate_id, currency, rates, created_at FROM exchange_rates").
		WithArgs(models.USD).
		WillReturnError(dbErr)

	repo := NewExchangeRateReadRepository(db)
	snapshot, err := repo.GetLatestByCurrency(ctx, models.USD)

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, snapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}
