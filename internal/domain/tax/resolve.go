package tax

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Source names the rule that produced a Resolution
type Source string

// Resolution sources, in precedence order
const (
	SourceCountry  Source = "country"
	SourceCategory Source = "category"
	SourceDefault  Source = "default"
	SourceNone     Source = "none"
)

var hundred = decimal.NewFromInt(100)

// Resolution is the rate that applies to a sale and where it came from
type Resolution struct {
	Rate      decimal.Decimal
	Source    Source
	TaxRateID string
	Name      string
}

// Resolve picks the applicable rate for a sale shipped to country of a product in category.
//
// Only active rates take part. A rate pinned to the country wins when its category is
// empty or equal to category, and a rate matching both beats a country-wide one. Failing
// that, a country-less rate for the category applies, then the default rate, then zero.
// Among equally specific candidates the earliest created rate wins.
func Resolve(rates []*TaxRate, country, category string) Resolution {
	ordered := make([]*TaxRate, 0, len(rates))
	for _, r := range rates {
		if r != nil && r.IsActive {
			ordered = append(ordered, r)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var countryWide, countryAndCategory, categoryOnly, fallback *TaxRate
	for _, r := range ordered {
		sameCountry := country != "" && strings.EqualFold(r.Country, country)
		sameCategory := category != "" && strings.EqualFold(r.ProductCategory, category)

		switch {
		case sameCountry && sameCategory:
			if countryAndCategory == nil {
				countryAndCategory = r
			}
		case sameCountry && r.ProductCategory == "":
			if countryWide == nil {
				countryWide = r
			}
		case r.Country == "" && sameCategory:
			if categoryOnly == nil {
				categoryOnly = r
			}
		}
		if r.IsDefault && fallback == nil {
			fallback = r
		}
	}

	switch {
	case countryAndCategory != nil:
		return resolutionOf(countryAndCategory, SourceCountry)
	case countryWide != nil:
		return resolutionOf(countryWide, SourceCountry)
	case categoryOnly != nil:
		return resolutionOf(categoryOnly, SourceCategory)
	case fallback != nil:
		return resolutionOf(fallback, SourceDefault)
	default:
		return Resolution{Rate: decimal.Zero, Source: SourceNone}
	}
}

func resolutionOf(r *TaxRate, source Source) Resolution {
	return Resolution{Rate: r.Rate, Source: source, TaxRateID: r.ID, Name: r.Name}
}

// Calculate returns amount × rate / 100 rounded half away from zero to 2 decimals.
func Calculate(amount, ratePercent decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return amount.Mul(ratePercent).Div(hundred).Round(2), nil
}
