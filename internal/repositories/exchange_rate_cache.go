package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ivmolchanov/walletsvc/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// ExchangeRateCacheRepository caches current exchange rates in Redis with a
// short TTL, so repeated transfers between the same currencies skip the
// snapshot lookup.
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL.
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(fromCurrency, toCurrency string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", fromCurrency, toCurrency)
}

// GetRate fetches a cached exchange rate between two currencies.
func (r *ExchangeRateCacheRepository) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	key := rateKey(fromCurrency, toCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("exchange rate not cached for %s->%s", fromCurrency, toCurrency)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)

	logger.Log.Infow(
		"key", key,
		"value", val,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// SetRate caches an exchange rate with the repository's TTL.
func (r *ExchangeRateCacheRepository) SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error {
	key := rateKey(fromCurrency, toCurrency)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate,
		"error", err,
	)

	return err
}
