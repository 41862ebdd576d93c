package currency

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate quotes how many units of Currency buy one unit of the base currency
type ExchangeRate struct {
	Currency  string
	Rate      decimal.Decimal
	Source    string
	UpdatedAt time.Time
}

// Validate for validating ExchangeRate struct
func (r *ExchangeRate) Validate() error {
	if !IsSupported(r.Currency) {
		return fmt.Errorf("%w: %s", ErrUnsupportedCurrency, r.Currency)
	}
	if !r.Rate.IsPositive() {
		return ErrInvalidExchangeRate
	}
	if r.UpdatedAt.IsZero() {
		return fmt.Errorf("validation failed: [Field: UpdatedAt, Tag: required]")
	}
	return nil
}

// RateTable is a snapshot of rates keyed by currency code against Base
type RateTable struct {
	Base  string
	Rates map[string]decimal.Decimal
}

// NewRateTable builds a table from a list of rates. The base currency is always present with rate 1.
func NewRateTable(base string, rates []*ExchangeRate) *RateTable {
	table := &RateTable{
		Base:  strings.ToUpper(base),
		Rates: make(map[string]decimal.Decimal, len(rates)+1),
	}
	for _, r := range rates {
		if r == nil || !r.Rate.IsPositive() {
			continue
		}
		table.Rates[strings.ToUpper(r.Currency)] = r.Rate
	}
	table.Rates[table.Base] = decimal.NewFromInt(1)
	return table
}

// RateOf returns the rate of code against the base currency.
func (t *RateTable) RateOf(code string) (decimal.Decimal, error) {
	rate, ok := t.Rates[strings.ToUpper(code)]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
	}
	return rate, nil
}

// Convert converts amount from one currency into another through the base currency
// and rounds to the target currency's minor unit. Same-currency conversions return amount as is.
func (t *RateTable) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		if _, err := t.RateOf(from); err != nil {
			return decimal.Zero, err
		}
		return amount, nil
	}

	fromRate, err := t.RateOf(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := t.RateOf(to)
	if err != nil {
		return decimal.Zero, err
	}

	inBase := amount.DivRound(fromRate, 16)
	return Round(inBase.Mul(toRate), to), nil
}
