package currency

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyService converts prices for the storefront and checkout.
type CurrencyService interface {
	// BaseCurrency is the currency every exchange rate is quoted against
	BaseCurrency() string
	// Convert converts amount between two supported currencies
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	// ListRates returns the cached exchange rates
	ListRates(ctx context.Context) ([]*ExchangeRate, error)
	// Table returns the cached rates as a conversion table
	Table(ctx context.Context) (*RateTable, error)
	// Reload drops the cached rates so the next call reads the repository again
	Reload(ctx context.Context) error
}

// ExchangeRateAdminService defines admin operations on exchange rates.
type ExchangeRateAdminService interface {
	// UpsertRate sets the rate of one currency against the base currency
	UpsertRate(ctx context.Context, code string, rate decimal.Decimal) (*ExchangeRate, error)
	// Refresh pulls the latest rates from the configured provider and stores them
	Refresh(ctx context.Context) ([]*ExchangeRate, error)
}

// ExchangeRateRepository defines persistence for exchange rates
type ExchangeRateRepository interface {
	List(ctx context.Context) ([]*ExchangeRate, error)
	GetByCurrency(ctx context.Context, code string) (*ExchangeRate, error)
	Upsert(ctx context.Context, rate *ExchangeRate) error
}

// RateProvider fetches live rates for a base currency from an external source
type RateProvider interface {
	Name() string
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// RateCache shares the rate list across API replicas
type RateCache interface {
	Get(ctx context.Context) ([]*ExchangeRate, bool, error)
	Set(ctx context.Context, rates []*ExchangeRate, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
