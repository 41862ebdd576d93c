//go:build unit
// +build unit

package tax

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newRate(name, country, category string, pct string, isDefault bool, age int) *TaxRate {
	return &TaxRate{
		ID:              uuid.NewString(),
		Name:            name,
		Country:         country,
		ProductCategory: category,
		Rate:            decimal.RequireFromString(pct),
		IsDefault:       isDefault,
		IsActive:        true,
		CreatedAt:       epoch.Add(time.Duration(age) * time.Hour),
		UpdatedAt:       epoch.Add(time.Duration(age) * time.Hour),
	}
}

func TestResolve_Precedence(t *testing.T) {
	ngVAT := newRate("Nigeria VAT", "NG", "", "7.5", false, 1)
	ngBatteries := newRate("Nigeria battery levy", "NG", "batteries", "10", false, 2)
	panels := newRate("Panel duty", "", "solar_panels", "5", false, 3)
	ghInverters := newRate("Ghana inverter VAT", "GH", "inverters", "12.5", false, 4)
	fallback := newRate("Standard", "", "", "2", true, 5)
	rates := []*TaxRate{fallback, ghInverters, panels, ngBatteries, ngVAT}

	tests := []struct {
		name     string
		country  string
		category string
		wantRate string
		wantSrc  Source
		wantID   string
	}{
		{"country and category beats country-wide", "NG", "batteries", "10", SourceCountry, ngBatteries.ID},
		{"country-wide beats category", "NG", "solar_panels", "7.5", SourceCountry, ngVAT.ID},
		{"country match is case-insensitive", "ng", "inverters", "7.5", SourceCountry, ngVAT.ID},
		{"category when country has no rate", "KE", "solar_panels", "5", SourceCategory, panels.ID},
		{"country rate for other category does not apply", "GH", "solar_panels", "5", SourceCategory, panels.ID},
		{"default when nothing matches", "KE", "mounting", "2", SourceDefault, fallback.ID},
		{"empty inputs fall to default", "", "", "2", SourceDefault, fallback.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(rates, tt.country, tt.category)
			assert.True(t, decimal.RequireFromString(tt.wantRate).Equal(got.Rate), "rate %s", got.Rate)
			assert.Equal(t, tt.wantSrc, got.Source)
			assert.Equal(t, tt.wantID, got.TaxRateID)
		})
	}
}

func TestResolve_ZeroWithoutDefault(t *testing.T) {
	rates := []*TaxRate{newRate("Nigeria VAT", "NG", "", "7.5", false, 1)}

	got := Resolve(rates, "ZA", "batteries")
	assert.True(t, got.Rate.IsZero())
	assert.Equal(t, SourceNone, got.Source)
	assert.Empty(t, got.TaxRateID)

	got = Resolve(nil, "NG", "batteries")
	assert.Equal(t, SourceNone, got.Source)
}

func TestResolve_IgnoresInactive(t *testing.T) {
	inactive := newRate("Old VAT", "NG", "", "5", false, 1)
	inactive.IsActive = false
	inactiveDefault := newRate("Old default", "", "", "1", true, 2)
	inactiveDefault.IsActive = false

	got := Resolve([]*TaxRate{inactive, inactiveDefault}, "NG", "kits")
	assert.Equal(t, SourceNone, got.Source)
}

func TestResolve_EarliestWinsTies(t *testing.T) {
	newer := newRate("Newer VAT", "NG", "", "8", false, 10)
	older := newRate("Older VAT", "NG", "", "7.5", false, 1)

	got := Resolve([]*TaxRate{newer, older}, "NG", "")
	assert.Equal(t, older.ID, got.TaxRateID)
}

func TestCalculate(t *testing.T) {
	tax, err := Calculate(decimal.RequireFromString("150000"), decimal.RequireFromString("7.5"))
	require.NoError(t, err)
	assert.Equal(t, "11250", tax.String())

	tax, err = Calculate(decimal.RequireFromString("99.99"), decimal.RequireFromString("7.5"))
	require.NoError(t, err)
	assert.Equal(t, "7.5", tax.String()) // 7.49925 rounds to 7.50

	tax, err = Calculate(decimal.RequireFromString("10"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, tax.IsZero())

	_, err = Calculate(decimal.RequireFromString("-1"), decimal.RequireFromString("5"))
	assert.ErrorIs(t, err, ErrNegativeAmount)
}
