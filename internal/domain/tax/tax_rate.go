package tax

import (
	"errors"
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

var (
	// ErrTaxRateNotFound is returned when no tax rate has the requested ID
	ErrTaxRateNotFound = errors.New("tax rate not found")
	// ErrInvalidRate is returned for percentages outside [0, 100]
	ErrInvalidRate = errors.New("tax rate must be between 0 and 100 percent")
	// ErrNegativeAmount is returned when asked to tax a negative amount
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrRatePrecision is returned for percentages with more than four decimal places
	ErrRatePrecision = errors.New("tax rate allows at most 4 decimal places")
)

var maxRate = decimal.NewFromInt(100)

// ratePlaces matches the scale of the tax_rates.rate column
const ratePlaces = 4

// TaxRate is a percentage applied to sales in a country, to a product category, or by default.
type TaxRate struct {
	ID              string          `validate:"required,uuid4"`
	Name            string          `validate:"required,min=1,max=100"`
	Country         string          `validate:"omitempty,iso3166_1_alpha2"`
	ProductCategory string          `validate:"omitempty,max=50"`
	Rate            decimal.Decimal // percent, e.g. 7.5
	IsDefault       bool
	IsActive        bool
	CreatedAt       time.Time `validate:"required"`
	UpdatedAt       time.Time `validate:"required"`
}

// Validate for validating TaxRate struct
func (r *TaxRate) Validate() error {
	if err := validators.Struct(r); err != nil {
		return err
	}
	if r.Rate.IsNegative() || r.Rate.GreaterThan(maxRate) {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, r.Rate.String())
	}
	if !r.Rate.Round(ratePlaces).Equal(r.Rate) {
		return fmt.Errorf("%w: got %s", ErrRatePrecision, r.Rate.String())
	}
	return nil
}

// TaxRateQuery filters the admin listing of tax rates
type TaxRateQuery struct {
	Country         string `validate:"omitempty,iso3166_1_alpha2"`
	ProductCategory string `validate:"omitempty,max=50"`
	ActiveOnly      bool
	Limit           int `validate:"omitempty,min=1,max=500"`
	Offset          int `validate:"omitempty,min=0"`
}

// NewTaxRateQuery returns a query matching every rate
func NewTaxRateQuery() *TaxRateQuery {
	return &TaxRateQuery{}
}

// Validate for validating TaxRateQuery struct
func (q *TaxRateQuery) Validate() error {
	return validators.Struct(q)
}
