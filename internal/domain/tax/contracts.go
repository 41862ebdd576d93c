package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// TaxService answers "which rate applies" for checkout and storefront previews.
type TaxService interface {
	// GetTaxRate resolves the rate for a sale shipped to country of a product in category.
	GetTaxRate(ctx context.Context, country, category string) (Resolution, error)

	// CalculateTax resolves the rate and applies it to amount.
	// It returns the tax amount together with the resolution used.
	CalculateTax(ctx context.Context, amount decimal.Decimal, country, category string) (decimal.Decimal, Resolution, error)

	// Reload drops the cached rates so the next lookup reads the repository again.
	Reload(ctx context.Context) error
}

// TaxRateAdminService defines the admin console operations on tax rates.
type TaxRateAdminService interface {
	Create(ctx context.Context, input *TaxRateInput) (*TaxRate, error)
	List(ctx context.Context, query *TaxRateQuery) ([]*TaxRate, error)
	GetByID(ctx context.Context, id string) (*TaxRate, error)
	UpdateByID(ctx context.Context, id string, input *TaxRateInput) (*TaxRate, error)
	DeleteByID(ctx context.Context, id string) error
}

// TaxRateInput carries the editable fields of a tax rate
type TaxRateInput struct {
	Name            string
	Country         string
	ProductCategory string
	Rate            decimal.Decimal
	IsDefault       bool
	IsActive        bool
}

// TaxRateRepository defines the interface for TaxRate persistence
type TaxRateRepository interface {
	Create(ctx context.Context, rate *TaxRate) error
	List(ctx context.Context, query *TaxRateQuery) ([]*TaxRate, error)
	GetByID(ctx context.Context, id string) (*TaxRate, error)
	UpdateByID(ctx context.Context, rate *TaxRate) error
	DeleteByID(ctx context.Context, id string) error
	// ClearDefault unsets IsDefault on every rate except exceptID
	ClearDefault(ctx context.Context, exceptID string) error
}
