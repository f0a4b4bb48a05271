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
	// ErrRateCreation is returned when a snapshot mentions an unsupported currency.
	ErrRateCreation = errors.New("unknown currency in exchange rate snapshot")
	// ErrInvalidCurrencyPair is returned when a rate lookup uses an unsupported currency.
	ErrInvalidCurrencyPair = errors.New("invalid currency pair")
	// ErrNoRateAvailable is returned when no snapshot has been ingested yet for the pair.
	ErrNoRateAvailable = errors.New("no exchange rate available")
)

// ExchangeRateWriter persists exchange rate snapshots.
type ExchangeRateWriter interface {
	Save(ctx context.Context, rate *models.ExchangeRateDB) error
}

// ExchangeRateReader reads the newest snapshot per base currency.
type ExchangeRateReader interface {
	GetLatestByCurrency(ctx context.Context, currency string) (*models.ExchangeRateDB, error)
}

// RateCache caches resolved rates for currency pairs.
type RateCache interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error
}

// RateService is the exchange rate store: it validates and appends snapshots,
// and resolves the current rate for a currency pair. "Current" means the
// snapshot with the latest creation timestamp.
type RateService struct {
	currencies models.CurrencySet
	writeRepo  ExchangeRateWriter
	readRepo   ExchangeRateReader
	cacheRepo  RateCache
}

// NewRateService creates a new RateService. The cache may be nil, in which
// case every lookup reads the snapshot store.
func NewRateService(
	currencies models.CurrencySet,
	writeRepo ExchangeRateWriter,
	readRepo ExchangeRateReader,
	cacheRepo RateCache,
) *RateService {
	return &RateService{
		currencies: currencies,
		writeRepo:  writeRepo,
		readRepo:   readRepo,
		cacheRepo:  cacheRepo,
	}
}

// IngestRate validates and appends a snapshot of rates for the base currency.
// Nothing is persisted when any currency in the snapshot is unsupported.
func (s *RateService) IngestRate(ctx context.Context, baseCurrency string, rates map[string]float64) (*models.ExchangeRateDB, error) {
	if !s.currencies.Contains(baseCurrency) {
		logger.Log.Errorw("unsupported base currency in snapshot", "currency", baseCurrency)
		return nil, ErrRateCreation
	}
	for target := range rates {
		if !s.currencies.Contains(target) {
			logger.Log.Errorw("unsupported target currency in snapshot", "base", baseCurrency, "target", target)
			return nil, ErrRateCreation
		}
	}

	snapshot := &models.ExchangeRateDB{
		RateID:   uuid.New(),
		Currency: baseCurrency,
		Rates:    models.RatesByCurrency(rates),
	}
	if err := s.writeRepo.Save(ctx, snapshot); err != nil {
		logger.Log.Errorw("failed to save rate snapshot", "currency", baseCurrency, "error", err)
		return nil, err
	}

	return snapshot, nil
}

// CurrentRate resolves the rate from base to target currency, rounded to five
// fractional digits half-down. Reads through the cache when one is configured.
func (s *RateService) CurrentRate(ctx context.Context, baseCurrency, targetCurrency string) (decimal.Decimal, error) {
	if !s.currencies.Contains(baseCurrency) || !s.currencies.Contains(targetCurrency) {
		return decimal.Zero, ErrInvalidCurrencyPair
	}

	if s.cacheRepo != nil {
		if rate, err := s.cacheRepo.GetRate(ctx, baseCurrency, targetCurrency); err == nil {
			return rate, nil
		}
	}

	snapshot, err := s.readRepo.GetLatestByCurrency(ctx, baseCurrency)
	if err != nil {
		logger.Log.Errorw("failed to read rate snapshot", "base", baseCurrency, "error", err)
		return decimal.Zero, err
	}
	if snapshot == nil {
		return decimal.Zero, ErrNoRateAvailable
	}

	raw, ok := snapshot.Rates[targetCurrency]
	if !ok {
		return decimal.Zero, ErrNoRateAvailable
	}
	rate := money.RoundRate(decimal.NewFromFloat(raw))

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetRate(ctx, baseCurrency, targetCurrency, rate); err != nil {
			logger.Log.Errorw("failed to cache rate", "base", baseCurrency, "target", targetCurrency, "error", err)
		}
	}

	return rate, nil
}

// CurrentRates returns the raw rates of the newest snapshot for the base currency.
func (s *RateService) CurrentRates(ctx context.Context, baseCurrency string) (map[string]float64, error) {
	if !s.currencies.Contains(baseCurrency) {
		return nil, ErrInvalidCurrencyPair
	}

	snapshot, err := s.readRepo.GetLatestByCurrency(ctx, baseCurrency)
	if err != nil {
		logger.Log.Errorw("failed to read rate snapshot", "base", baseCurrency, "error", err)
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrNoRateAvailable
	}

	return snapshot.Rates, nil
}
