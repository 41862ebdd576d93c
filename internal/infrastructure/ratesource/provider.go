// Package ratesource fetches live exchange rates from an HTTP JSON API.
package ratesource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// BasePlaceholder in the provider URL is replaced by the base currency code
const BasePlaceholder = "{base}"

const maxResponseSize = 1 << 20

// httpRateProvider reads `{"rates": {"USD": 0.00065, ...}}` shaped answers
type httpRateProvider struct {
	url        string
	httpClient *http.Client
	logger     logger.Logger
}

// NewHTTPRateProvider creates a RateProvider for url. Without a {base} placeholder
// the base currency is appended as the last path segment.
func NewHTTPRateProvider(url string, httpClient *http.Client, logger logger.Logger) (currency.RateProvider, error) {
	if url == "" {
		return nil, fmt.Errorf("rate provider URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &httpRateProvider{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (p *httpRateProvider) Name() string {
	return "http-rate-provider"
}

func (p *httpRateProvider) endpoint(base string) string {
	if strings.Contains(p.url, BasePlaceholder) {
		return strings.ReplaceAll(p.url, BasePlaceholder, base)
	}
	return strings.TrimSuffix(p.url, "/") + "/" + base
}

// FetchRates returns the quoted units of every currency per one unit of base.
// Numbers are read from their JSON literal so no precision is lost to float64.
func (p *httpRateProvider) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint(base), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach rate provider: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read rate provider response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider answered with status %d", resp.StatusCode)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("rate provider returned malformed JSON")
	}

	if result := gjson.GetBytes(raw, "result"); result.Exists() && result.String() != "success" {
		return nil, fmt.Errorf("rate provider reported %q", result.String())
	}
	if quotedBase := gjson.GetBytes(raw, "base_code"); quotedBase.Exists() && !strings.EqualFold(quotedBase.String(), base) {
		return nil, fmt.Errorf("rate provider quoted base %s, want %s", quotedBase.String(), base)
	}

	rates := gjson.GetBytes(raw, "rates")
	if !rates.IsObject() {
		return nil, fmt.Errorf("rate provider response has no rates")
	}

	quotes := make(map[string]decimal.Decimal)
	rates.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			return true
		}
		rate, err := decimal.NewFromString(value.Raw)
		if err != nil {
			p.logger.Warn("Skipping unparsable rate for ", key.String(), ": ", value.Raw)
			return true
		}
		quotes[strings.ToUpper(key.String())] = rate
		return true
	})

	p.logger.Debug("Fetched ", len(quotes), " exchange rates for base ", base)
	return quotes, nil
}
