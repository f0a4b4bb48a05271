package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRateCacheRepository_SetAndGet(t *testing.T) {
	ctx := context.Background()

	rdb, mock := redismock.NewClientMock()
	repo := NewExchangeRateCacheRepository(rdb, time.Minute)

	rate := decimal.RequireFromString("63.54563")
	mock.ExpectSet("exchange_rate:USD:RUB", rate.String(), time.Minute).SetVal("OK")

	err := repo.SetRate(ctx, "USD", "RUB", rate)
	assert.NoError(t, err)

	mock.ExpectGet("exchange_rate:USD:RUB").SetVal("63.54563")

	got, err := repo.GetRate(ctx, "USD", "RUB")
	assert.NoError(t, err)
	assert.True(t, got.Equal(rate))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateCacheRepository_GetMissingKey(t *testing.T) {
	ctx := context.Background()

	rdb, mock := redismock.NewClientMock()
	repo := NewExchangeRateCacheRepository(rdb, time.Minute)

	mock.ExpectGet("exchange_rate:EUR:GBP").RedisNil()

	_, err := repo.GetRate(ctx, "EUR", "GBP")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not cached")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateCacheRepository_GetCorruptValue(t *testing.T) {
	ctx := context.Background()

	rdb, mock := redismock.NewClientMock()
	repo := NewExchangeRateCacheRepository(rdb, time.Minute)

	mock.ExpectGet("exchange_rate:USD:EUR").SetVal("not-a-number")

	_, err := repo.GetRate(ctx, "USD", "EUR")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateCacheRepository_RedisError(t *testing.T) {
	ctx := context.Background()

	rdb, mock := redismock.NewClientMock()
	repo := NewExchangeRateCacheRepository(rdb, time.Minute)

	redisErr := errors.New("connection refused")
	mock.ExpectGet("exchange_rate:USD:RUB").SetErr(redisErr)

	_, err := repo.GetRate(ctx, "USD", "RUB")
	assert.ErrorIs(t, err, redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
