package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ivmolchanov/walletsvc/internal/logger"
)

// ErrRateSource is returned when the external rate provider responds with a
// non-success status.
var ErrRateSource = errors.New("rate provider request failed")

// RatesAPIFacade fetches spot rates from an exchangeratesapi-compatible HTTP
// provider. It performs a single request per call, no retries.
type RatesAPIFacade struct {
	baseURL string
	client  *http.Client
}

// NewRatesAPIFacade creates a facade for the provider at baseURL. A nil client
// falls back to http.DefaultClient.
func NewRatesAPIFacade(baseURL string, client *http.Client) *RatesAPIFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &RatesAPIFacade{
		baseURL: baseURL,
		client:  client,
	}
}

// ratesAPIResponse is the provider's response body. On errors the provider
// returns an error message instead of rates.
type ratesAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
	Error string             `json:"error"`
}

// FetchRates fetches the rates for baseCurrency against targetCurrencies.
func (f *RatesAPIFacade) FetchRates(ctx context.Context, baseCurrency string, targetCurrencies []string) (map[string]float64, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("base", baseCurrency)
	q.Set("symbols", strings.Join(targetCurrencies, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("rate provider request failed", "base", baseCurrency, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed ratesAPIResponse
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrRateSource, parsed.Error)
		}
		return nil, fmt.Errorf("%w: status %d", ErrRateSource, resp.StatusCode)
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	return parsed.Rates, nil
}
