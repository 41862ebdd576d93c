package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// currencyService implements the CurrencyService interface.
// Rates are held in process after the first read; an optional shared cache sits
// between the process and the repository.
type currencyService struct {
	base     string
	repo     currency.ExchangeRateRepository
	cache    currency.RateCache
	cacheTTL time.Duration
	logger   logger.Logger

	mu     sync.RWMutex
	rates  []*currency.ExchangeRate
	loaded bool
}

// NewCurrencyService creates a new instance of CurrencyService. cache may be nil.
func NewCurrencyService(baseCurrency string, repo currency.ExchangeRateRepository, cache currency.RateCache, cacheTTL time.Duration, logger logger.Logger) (currency.CurrencyService, error) {
	base, err := currency.Normalize(baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("invalid base currency %q: %w", baseCurrency, err)
	}
	return &currencyService{
		base:     base,
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}, nil
}

func (s *currencyService) BaseCurrency() string {
	return s.base
}

// Convert converts amount between two supported currencies through the base currency
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, err := currency.Normalize(from)
	if err != nil {
		return decimal.Zero, err
	}
	to, err = currency.Normalize(to)
	if err != nil {
		return decimal.Zero, err
	}
	if from == to {
		return amount, nil
	}

	table, err := s.Table(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return table.Convert(amount, from, to)
}

// ListRates returns the cached exchange rates
func (s *currencyService) ListRates(ctx context.Context) ([]*currency.ExchangeRate, error) {
	s.mu.RLock()
	if s.loaded {
		rates := s.rates
		s.mu.RUnlock()
		return rates, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.rates, nil
	}

	rates, err := s.loadRates(ctx)
	if err != nil {
		return nil, err
	}
	s.rates = rates
	s.loaded = true
	return rates, nil
}

func (s *currencyService) loadRates(ctx context.Context) ([]*currency.ExchangeRate, error) {
	if s.cache != nil {
		rates, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("Failed to read exchange rates from cache: ", err)
		} else if ok {
			return rates, nil
		}
	}

	rates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rates, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to write exchange rates to cache: ", err)
		}
	}
	s.logger.Debug("Loaded ", len(rates), " exchange rates")
	return rates, nil
}

// Table returns the cached rates as a conversion table
func (s *currencyService) Table(ctx context.Context) (*currency.RateTable, error) {
	rates, err := s.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	return currency.NewRateTable(s.base, rates), nil
}

// Reload drops the in-process and shared caches
func (s *currencyService) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.rates = nil
	s.loaded = false
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			return fmt.Errorf("failed to invalidate exchange rate cache: %w", err)
		}
	}
	return nil
}

// exchangeRateAdminService implements the ExchangeRateAdminService interface
type exchangeRateAdminService struct {
	currencyService currency.CurrencyService
	repo            currency.ExchangeRateRepository
	provider        currency.RateProvider
	clock           clock.Clock
	logger          logger.Logger
}

// NewExchangeRateAdminService creates a new instance of ExchangeRateAdminService. provider may be nil,
// in which case Refresh fails with ErrNoRateProvider.
func NewExchangeRateAdminService(
	currencyService currency.CurrencyService,
	repo currency.ExchangeRateRepository,
	provider currency.RateProvider,
	clk clock.Clock,
	logger logger.Logger,
) (currency.ExchangeRateAdminService, error) {
	return &exchangeRateAdminService{
		currencyService: currencyService,
		repo:            repo,
		provider:        provider,
		clock:           clk,
		logger:          logger,
	}, nil
}

// UpsertRate sets the rate of code against the base currency
func (s *exchangeRateAdminService) UpsertRate(ctx context.Context, code string, rate decimal.Decimal) (*currency.ExchangeRate, error) {
	code, err := currency.Normalize(code)
	if err != nil {
		return nil, err
	}
	if code == s.currencyService.BaseCurrency() {
		return nil, fmt.Errorf("%w: the base currency rate is fixed at 1", currency.ErrInvalidExchangeRate)
	}

	exchangeRate := &currency.ExchangeRate{
		Currency:  code,
		Rate:      rate,
		Source:    "manual",
		UpdatedAt: s.clock.Now(),
	}
	if err := exchangeRate.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, exchangeRate); err != nil {
		return nil, err
	}
	if err := s.currencyService.Reload(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Set exchange rate of ", code, " to ", rate.String())
	return exchangeRate, nil
}

// Refresh pulls the latest rates from the provider and stores every supported currency it quotes
func (s *exchangeRateAdminService) Refresh(ctx context.Context) ([]*currency.ExchangeRate, error) {
	if s.provider == nil {
		return nil, currency.ErrNoRateProvider
	}

	base := s.currencyService.BaseCurrency()
	quotes, err := s.provider.FetchRates(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates from %s: %w", s.provider.Name(), err)
	}

	now := s.clock.Now()
	var updated []*currency.ExchangeRate
	for _, c := range currency.Supported() {
		if c.Code == base {
			continue
		}
		rate, ok := quotes[c.Code]
		if !ok || !rate.IsPositive() {
			s.logger.Warn("Exchange rate provider returned no usable rate for ", c.Code)
			continue
		}

		exchangeRate := &currency.ExchangeRate{
			Currency:  c.Code,
			Rate:      rate,
			Source:    s.provider.Name(),
			UpdatedAt: now,
		}
		if err := s.repo.Upsert(ctx, exchangeRate); err != nil {
			return updated, err
		}
		updated = append(updated, exchangeRate)
	}

	if err := s.currencyService.Reload(ctx); err != nil {
		return updated, err
	}

	s.logger.Info("Refreshed ", len(updated), " exchange rates from ", s.provider.Name())
	return updated, nil
}
