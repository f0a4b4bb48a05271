package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivmolchanov/walletsvc/internal/logger"
	"github.com/ivmolchanov/walletsvc/internal/metrics"
	"github.com/ivmolchanov/walletsvc/internal/models"
)

// RateFetcher fetches spot rates from the external provider.
type RateFetcher interface {
	FetchRates(ctx context.Context, baseCurrency string, targetCurrencies []string) (map[string]float64, error)
}

// RateIngester stores a fetched snapshot.
type RateIngester interface {
	IngestRate(ctx context.Context, baseCurrency string, rates map[string]float64) (*models.ExchangeRateDB, error)
}

// RefreshService walks the supported currency set and stores a fresh snapshot
// for each currency as base.
type RefreshService struct {
	currencies models.CurrencySet
	fetcher    RateFetcher
	ingester   RateIngester
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(currencies models.CurrencySet, fetcher RateFetcher, ingester RateIngester) *RefreshService {
	return &RefreshService{
		currencies: currencies,
		fetcher:    fetcher,
		ingester:   ingester,
	}
}

// RefreshAllRates fetches and ingests rates for every supported currency as
// base. A failing currency does not stop the others; the failures are joined
// into the returned error so the caller can see which currencies went stale.
func (s *RefreshService) RefreshAllRates(ctx context.Context) error {
	var errs []error
	for _, base := range s.currencies.Codes() {
		targets := s.currencies.Others(base)

		rates, err := s.fetcher.FetchRates(ctx, base, targets)
		if err != nil {
			logger.Log.Errorw("failed to fetch rates", "base", base, "error", err)
			metrics.RateRefreshFailedTotal.Inc()
			errs = append(errs, fmt.Errorf("fetch %s: %w", base, err))
			continue
		}

		if _, err := s.ingester.IngestRate(ctx, base, rates); err != nil {
			logger.Log.Errorw("failed to ingest rates", "base", base, "error", err)
			metrics.RateRefreshFailedTotal.Inc()
			errs = append(errs, fmt.Errorf("ingest %s: %w", base, err))
			continue
		}

		metrics.RateRefreshTotal.Inc()
	}
	return errors.Join(errs...)
}
