package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/ivmolchanov/walletsvc/internal/services"
)

// RatesReader returns the current rate snapshot for a base currency.
type RatesReader interface {
	CurrentRates(ctx context.Context, baseCurrency string) (map[string]float64, error)
}

// RatesResponse represents a successful response with exchange rates
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency of the rates
	// example: USD
	Base string `json:"base"`

	// Rates against the base currency
	Rates map[string]float64 `json:"rates"`
}

// RatesErrorResponse represents an error response when fetching exchange rates
// swagger:model RatesErrorResponse
type RatesErrorResponse struct {
	// Error message
	// example: No exchange rate available
	Error string `json:"error"`
}

// NewRatesHandler handles current exchange rate requests.
// @Summary Get current exchange rates
// @Description Returns the newest rate snapshot for the base currency (default USD).
// @Tags exchange
// @Produce json
// @Param base query string false "Base currency"
// @Success 200 {object} handlers.RatesResponse "Current rates"
// @Failure 400 {object} handlers.RatesErrorResponse "Unsupported currency"
// @Failure 404 {object} handlers.RatesErrorResponse "No snapshot ingested yet"
// @Router /exchange/rates [get]
// @Security BearerAuth
func NewRatesHandler(reader RatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		base := r.URL.Query().Get("base")
		if base == "" {
			base = models.USD
		}

		rates, err := reader.CurrentRates(ctx, base)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCurrencyPair):
				w.WriteHeader(http.StatusBadRequest)
			case errors.Is(err, services.ErrNoRateAvailable):
				w.WriteHeader(http.StatusNotFound)
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RatesErrorResponse{Error: "internal error"})
				return
			}
			json.NewEncoder(w).Encode(RatesErrorResponse{Error: err.Error()})
			return
		}

		json.NewEncoder(w).Encode(RatesResponse{Base: base, Rates: rates})
	}
}
