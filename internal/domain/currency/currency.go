package currency

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnsupportedCurrency is returned for unknown codes or codes without a usable rate
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrInvalidExchangeRate is returned for rates that are zero or negative
	ErrInvalidExchangeRate = errors.New("exchange rate must be greater than zero")
	// ErrNoRateProvider is returned by refreshes when no provider is configured
	ErrNoRateProvider = errors.New("no exchange rate provider configured")
	ErrRateNotFound   = errors.New("exchange rate not found")
)

// Currency describes how amounts in a currency are displayed and rounded
type Currency struct {
	Code     string
	Symbol   string
	Name     string
	Decimals int32
}

var supported = map[string]Currency{
	"NGN": {Code: "NGN", Symbol: "₦", Name: "Nigerian Naira", Decimals: 2},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar", Decimals: 2},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", Decimals: 2},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound", Decimals: 2},
	"GHS": {Code: "GHS", Symbol: "₵", Name: "Ghanaian Cedi", Decimals: 2},
	"KES": {Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling", Decimals: 2},
	"ZAR": {Code: "ZAR", Symbol: "R", Name: "South African Rand", Decimals: 2},
}

// Lookup returns the currency registered under code (case-insensitive).
func Lookup(code string) (Currency, bool) {
	c, ok := supported[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// IsSupported reports whether code names a supported currency.
func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Supported lists every supported currency ordered by code.
func Supported() []Currency {
	list := make([]Currency, 0, len(supported))
	for _, c := range supported {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}

// Normalize upper-cases code and checks it is supported.
func Normalize(code string) (string, error) {
	c, ok := Lookup(code)
	if !ok {
		return "", ErrUnsupportedCurrency
	}
	return c.Code, nil
}

// Round rounds amount to the minor unit of code, defaulting to 2 decimals.
func Round(amount decimal.Decimal, code string) decimal.Decimal {
	if c, ok := Lookup(code); ok {
		return amount.Round(c.Decimals)
	}
	return amount.Round(2)
}

// ToMinorUnits expresses amount in the smallest unit of code (kobo, cents, pesewas).
func ToMinorUnits(amount decimal.Decimal, code string) int64 {
	decimals := int32(2)
	if c, ok := Lookup(code); ok {
		decimals = c.Decimals
	}
	return amount.Shift(decimals).Round(0).IntPart()
}

// FromMinorUnits converts an amount in minor units of code back to major units.
func FromMinorUnits(minor int64, code string) decimal.Decimal {
	decimals := int32(2)
	if c, ok := Lookup(code); ok {
		decimals = c.Decimals
	}
	return decimal.New(minor, -decimals)
}
