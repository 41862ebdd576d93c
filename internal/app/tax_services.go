package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// taxService implements the TaxService interface over a lazily loaded list of active rates
type taxService struct {
	repo   tax.TaxRateRepository
	logger logger.Logger

	mu     sync.RWMutex
	rates  []*tax.TaxRate
	loaded bool
}

// NewTaxService creates a new instance of TaxService
func NewTaxService(repo tax.TaxRateRepository, logger logger.Logger) (tax.TaxService, error) {
	return &taxService{
		repo:   repo,
		logger: logger,
	}, nil
}

// GetTaxRate resolves the rate for a sale shipped to country of a product in category.
func (s *taxService) GetTaxRate(ctx context.Context, country, category string) (tax.Resolution, error) {
	rates, err := s.activeRates(ctx)
	if err != nil {
		return tax.Resolution{}, err
	}
	return tax.Resolve(rates, country, category), nil
}

// CalculateTax resolves the applicable rate and applies it to amount.
func (s *taxService) CalculateTax(ctx context.Context, amount decimal.Decimal, country, category string) (decimal.Decimal, tax.Resolution, error) {
	if amount.IsNegative() {
		return decimal.Zero, tax.Resolution{}, tax.ErrNegativeAmount
	}

	resolution, err := s.GetTaxRate(ctx, country, category)
	if err != nil {
		return decimal.Zero, tax.Resolution{}, err
	}

	taxAmount, err := tax.Calculate(amount, resolution.Rate)
	if err != nil {
		return decimal.Zero, tax.Resolution{}, err
	}
	return taxAmount, resolution, nil
}

// Reload drops the cached rates.
func (s *taxService) Reload(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rates = nil
	s.loaded = false
	return nil
}

func (s *taxService) activeRates(ctx context.Context) ([]*tax.TaxRate, error) {
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

	query := tax.NewTaxRateQuery()
	query.ActiveOnly = true
	rates, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax rates: %w", err)
	}

	s.rates = rates
	s.loaded = true
	s.logger.Debug("Loaded ", len(rates), " active tax rates")
	return rates, nil
}

// taxRateAdminService implements the TaxRateAdminService interface
type taxRateAdminService struct {
	repo       tax.TaxRateRepository
	taxService tax.TaxService
	clock      clock.Clock
	logger     logger.Logger
}

// NewTaxRateAdminService creates a new instance of TaxRateAdminService.
// Every write reloads taxService so checkout sees the change immediately.
func NewTaxRateAdminService(repo tax.TaxRateRepository, taxService tax.TaxService, clk clock.Clock, logger logger.Logger) (tax.TaxRateAdminService, error) {
	return &taxRateAdminService{
		repo:       repo,
		taxService: taxService,
		clock:      clk,
		logger:     logger,
	}, nil
}

// Create adds a tax rate. A new default rate takes the default flag from every other rate.
func (s *taxRateAdminService) Create(ctx context.Context, input *tax.TaxRateInput) (*tax.TaxRate, error) {
	now := s.clock.Now()
	rate := &tax.TaxRate{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	applyTaxRateInput(rate, input, now)

	if err := rate.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rate); err != nil {
		return nil, err
	}
	if err := s.afterWrite(ctx, rate); err != nil {
		return nil, err
	}

	s.logger.Info("Created tax rate with id ", rate.ID)
	return rate, nil
}

// List retrieves tax rates matching query
func (s *taxRateAdminService) List(ctx context.Context, query *tax.TaxRateQuery) ([]*tax.TaxRate, error) {
	if query == nil {
		query = tax.NewTaxRateQuery()
	}
	query.Country = strings.ToUpper(query.Country)
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

// GetByID retrieves a tax rate by ID
func (s *taxRateAdminService) GetByID(ctx context.Context, id string) (*tax.TaxRate, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateByID replaces the editable fields of a tax rate
func (s *taxRateAdminService) UpdateByID(ctx context.Context, id string, input *tax.TaxRateInput) (*tax.TaxRate, error) {
	rate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTaxRateInput(rate, input, s.clock.Now())

	if err := rate.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateByID(ctx, rate); err != nil {
		return nil, err
	}
	if err := s.afterWrite(ctx, rate); err != nil {
		return nil, err
	}

	s.logger.Info("Updated tax rate with id ", rate.ID)
	return rate, nil
}

// DeleteByID removes a tax rate
func (s *taxRateAdminService) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.taxService.Reload(ctx); err != nil {
		return fmt.Errorf("failed to reload tax rates: %w", err)
	}

	s.logger.Info("Deleted tax rate with id ", id)
	return nil
}

func (s *taxRateAdminService) afterWrite(ctx context.Context, rate *tax.TaxRate) error {
	if rate.IsDefault {
		if err := s.repo.ClearDefault(ctx, rate.ID); err != nil {
			return fmt.Errorf("failed to clear previous default tax rate: %w", err)
		}
	}
	if err := s.taxService.Reload(ctx); err != nil {
		return fmt.Errorf("failed to reload tax rates: %w", err)
	}
	return nil
}

func applyTaxRateInput(rate *tax.TaxRate, input *tax.TaxRateInput, now time.Time) {
	rate.Name = strings.TrimSpace(input.Name)
	rate.Country = strings.ToUpper(strings.TrimSpace(input.Country))
	rate.ProductCategory = strings.ToLower(strings.TrimSpace(input.ProductCategory))
	rate.Rate = input.Rate
	rate.IsDefault = input.IsDefault
	rate.IsActive = input.IsActive
	rate.UpdatedAt = now
}
