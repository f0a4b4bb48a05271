package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRefreshService_RefreshAllRates(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currencies := models.NewCurrencySet(models.USD, models.EUR)

	fetcher := NewMockRateFetcher(ctrl)
	ingester := NewMockRateIngester(ctrl)

	usdRates := map[string]float64{models.EUR: 0.91}
	eurRates := map[string]float64{models.USD: 1.09}

	fetcher.EXPECT().FetchRates(ctx, models.USD, []string{models.EUR}).Return(usdRates, nil)
	fetcher.EXPECT().FetchRates(ctx, models.EUR, []string{models.USD}).Return(eurRates, nil)
	ingester.EXPECT().IngestRate(ctx, models.USD, usdRates).Return(&models.ExchangeRateDB{}, nil)
	ingester.EXPECT().IngestRate(ctx, models.EUR, eurRates).Return(&models.ExchangeRateDB{}, nil)

	svc := NewRefreshService(currencies, fetcher, ingester)
	err := svc.RefreshAllRates(ctx)

	assert.NoError(t, err)
}

func TestRefreshService_RefreshAllRates_ContinuesOnError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currencies := models.NewCurrencySet(models.USD, models.EUR, models.RUB)

	fetcher := NewMockRateFetcher(ctrl)
	ingester := NewMockRateIngester(ctrl)

	providerErr := errors.New("provider unavailable")
	eurRates := map[string]float64{models.USD: 1.09, models.RUB: 69.3}
	rubRates := map[string]float64{models.USD: 0.016, models.EUR: 0.014}

	// USD fails, the remaining currencies are still refreshed
	fetcher.EXPECT().FetchRates(ctx, models.USD, []string{models.EUR, models.RUB}).Return(nil, providerErr)
	fetcher.EXPECT().FetchRates(ctx, models.EUR, []string{models.USD, models.RUB}).Return(eurRates, nil)
	fetcher.EXPECT().FetchRates(ctx, models.RUB, []string{models.USD, models.EUR}).Return(rubRates, nil)
	ingester.EXPECT().IngestRate(ctx, models.EUR, eurRates).Return(&models.ExchangeRateDB{}, nil)
	ingester.EXPECT().IngestRate(ctx, models.RUB, rubRates).Return(&models.ExchangeRateDB{}, nil)

	svc := NewRefreshService(currencies, fetcher, ingester)
	err := svc.RefreshAllRates(ctx)

	assert.ErrorIs(t, err, providerErr)
	assert.Contains(t, err.Error(), "fetch USD")
}

func TestRefreshService_RefreshAllRates_IngestError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currencies := models.NewCurrencySet(models.USD)

	fetcher := NewMockRateFetcher(ctrl)
	ingester := NewMockRateIngester(ctrl)

	rates := map[string]float64{}
	fetcher.EXPECT().FetchRates(ctx, models.USD, []string{}).Return(rates, nil)
	ingester.EXPECT().IngestRate(ctx, models.USD, rates).Return(nil, ErrRateCreation)

	svc := NewRefreshService(currencies, fetcher, ingester)
	err := svc.RefreshAllRates(ctx)

	assert.ErrorIs(t, err, ErrRateCreation)
}
