//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTaxRate(name, country, category, pct string, isDefault bool, createdAt time.Time) *tax.TaxRate {
	return &tax.TaxRate{
		ID:              uuid.NewString(),
		Name:            name,
		Country:         country,
		ProductCategory: category,
		Rate:            decimal.RequireFromString(pct),
		IsDefault:       isDefault,
		IsActive:        true,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestTaxRateRepository_ListAndResolve(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	vat := newTestTaxRate("Nigeria VAT", "NG", "", "7.5", false, base)
	kits := newTestTaxRate("Kits levy", "", "kits", "5", false, base.Add(time.Hour))
	fallback := newTestTaxRate("Default", "", "", "10", true, base.Add(2*time.Hour))
	inactive := newTestTaxRate("Old VAT", "GH", "", "12.5", false, base.Add(3*time.Hour))
	inactive.IsActive = false

	for _, r := range []*tax.TaxRate{vat, kits, fallback, inactive} {
		require.NoError(t, tc.TaxRateRepo.Create(ctx, r))
	}

	query := tax.NewTaxRateQuery()
	query.ActiveOnly = true
	active, err := tc.TaxRateRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, vat.ID, active[0].ID)

	assert.Equal(t, tax.SourceCountry, tax.Resolve(active, "ng", "kits").Source)
	assert.Equal(t, tax.SourceCategory, tax.Resolve(active, "GH", "kits").Source)
	assert.True(t, decimal.NewFromInt(10).Equal(tax.Resolve(active, "GH", "inverters").Rate))

	byCountry, err := tc.TaxRateRepo.List(ctx, &tax.TaxRateQuery{Country: "NG"})
	require.NoError(t, err)
	assert.Len(t, byCountry, 1)
}

func TestTaxRateRepository_CreateKeepsFlagsAndScale(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	now := time.Now().UTC()

	draft := newTestTaxRate("Draft levy", "GH", "inverters", "7.125", false, now)
	draft.IsActive = false
	require.NoError(t, tc.TaxRateRepo.Create(ctx, draft))

	got, err := tc.TaxRateRepo.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.False(t, got.IsDefault)
	assert.True(t, decimal.RequireFromString("7.125").Equal(got.Rate), "got %s", got.Rate)

	query := tax.NewTaxRateQuery()
	query.ActiveOnly = true
	active, err := tc.TaxRateRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, active)
	assert.Equal(t, tax.SourceNone, tax.Resolve(active, "GH", "inverters").Source)
}

func TestTaxRateRepository_ClearDefault(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	now := time.Now().UTC()

	first := newTestTaxRate("First default", "", "", "5", true, now)
	second := newTestTaxRate("Second default", "", "", "8", true, now.Add(time.Minute))
	require.NoError(t, tc.TaxRateRepo.Create(ctx, first))
	require.NoError(t, tc.TaxRateRepo.Create(ctx, second))

	require.NoError(t, tc.TaxRateRepo.ClearDefault(ctx, second.ID))

	got, err := tc.TaxRateRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)

	got, err = tc.TaxRateRepo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestTaxRateRepository_UpdateAndDelete(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	rate := newTestTaxRate("VAT", "NG", "", "7.5", false, time.Now().UTC())
	require.NoError(t, tc.TaxRateRepo.Create(ctx, rate))

	rate.Rate = decimal.RequireFromString("8")
	rate.IsActive = false
	require.NoError(t, tc.TaxRateRepo.UpdateByID(ctx, rate))

	got, err := tc.TaxRateRepo.GetByID(ctx, rate.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(got.Rate))
	assert.False(t, got.IsActive)

	require.NoError(t, tc.TaxRateRepo.DeleteByID(ctx, rate.ID))
	_, err = tc.TaxRateRepo.GetByID(ctx, rate.ID)
	assert.ErrorIs(t, err, tax.ErrTaxRateNotFound)

	missing := newTestTaxRate("Ghost", "", "", "1", false, time.Now().UTC())
	assert.ErrorIs(t, tc.TaxRateRepo.UpdateByID(ctx, missing), tax.ErrTaxRateNotFound)
}
