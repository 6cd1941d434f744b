package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fundtransfer-api/internal/config"

	"github.com/shopspring/decimal"
)

var (
	ErrRateUnavailable     = errors.New("the exchange rate cannot be retrieved")
	ErrInvalidCurrencyPair = errors.New("currency codes must be 3-letter ISO-4217")
)

// exchangeRateService fetches conversion rates from an external HTTP API.
// Every call is a fresh lookup; rates are never cached. Failures of any kind
// (network, non-2xx, missing pair, malformed payload) surface as
// ErrRateUnavailable and trip the circuit breaker.
type exchangeRateService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewExchangeRateService creates a rate source backed by the configured API
func NewExchangeRateService(
	cfg config.ExchangeRateConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RateSourceInterface {
	return &exchangeRateService{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// GetRate retrieves the conversion multiplier from one currency to another
func (s *exchangeRateService) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))

	if len(from) != 3 || len(to) != 3 {
		return decimal.Zero, ErrInvalidCurrencyPair
	}

	if s.breaker.IsOpen() {
		s.logger.Warn("rate lookup rejected, circuit breaker open", "from", from, "to", to)
		s.recordLookup("rejected", 0)
		return decimal.Zero, ErrRateUnavailable
	}

	start := time.Now()
	rate, err := s.fetchRate(ctx, from, to)
	elapsed := time.Since(start)

	if err != nil {
		s.breaker.RecordFailure()
		s.recordLookup("failure", elapsed)
		s.logger.Error("rate lookup failed", "from", from, "to", to, "error", err)
		return decimal.Zero, ErrRateUnavailable
	}

	s.breaker.RecordSuccess()
	s.recordLookup("success", elapsed)
	s.logger.Debug("rate lookup completed", "from", from, "to", to, "rate", rate.String())

	return rate, nil
}

func (s *exchangeRateService) fetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	endpoint, err := url.Parse(s.baseURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate API URL: %w", err)
	}

	query := endpoint.Query()
	query.Set("api_key", s.apiKey)
	query.Set("from", from)
	query.Set("to", to)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decimal.Zero, fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Results map[string]float64 `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate payload: %w", err)
	}

	rate, ok := payload.Results[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate not found for currency %s", to)
	}

	dec := decimal.NewFromFloat(rate)
	if dec.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("rate API returned non-positive rate %s for %s", dec, to)
	}

	return dec, nil
}

func (s *exchangeRateService) recordLookup(status string, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordRateLookup(status, elapsed)
		s.metrics.RecordCircuitBreakerState("exchange_rate", s.breaker.GetState())
	}
}
