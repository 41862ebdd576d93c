//go:build unit
// +build unit

package commands

import (
	"bytes"
	"testing"

	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxRatesJSON = `[
  {"name": "Standard", "rate": 5, "is_default": true},
  {"name": "Nigeria VAT", "country": "NG", "rate": "7.5"},
  {"name": "Kenya Solar Relief", "country": "KE", "product_category": "solar_panels", "rate": "0"},
  {"name": "Kenya VAT", "country": "KE", "rate": "16"},
  {"name": "Battery Levy", "product_category": "batteries", "rate": "2.5"},
  {"name": "Retired", "country": "GH", "rate": "15", "is_active": false}
]`

const exchangeRatesJSON = `{"base": "NGN", "rates": {"USD": "0.00065", "KES": "0.084"}}`

func newRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "electrify-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitTaxCommands(root))
	require.NoError(t, InitCurrencyCommands(root))
	require.NoError(t, InitValidateCommands(root))

	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	return root, out
}

func TestTaxResolveCmd(t *testing.T) {
	ratesFile := testutil.WriteTestFile(t, "tax-rates.json", []byte(taxRatesJSON))

	tests := []struct {
		name     string
		country  string
		category string
		want     string
	}{
		{"country wide", "NG", "inverters", `rate=7.5 source=country name="Nigeria VAT"`},
		{"country and category", "KE", "solar_panels", `rate=0 source=country name="Kenya Solar Relief"`},
		{"category only", "ZA", "batteries", `rate=2.5 source=category name="Battery Levy"`},
		{"default", "ZA", "inverters", `rate=5 source=default name="Standard"`},
		{"inactive ignored", "GH", "", `rate=5 source=default name="Standard"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRootCmd(t)
			root.SetArgs([]string{"tax", "resolve", "--rates-file", ratesFile, "--country", tt.country, "--category", tt.category})

			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestTaxCalculateCmd(t *testing.T) {
	ratesFile := testutil.WriteTestFile(t, "tax-rates.json", []byte(taxRatesJSON))

	root, out := newRootCmd(t)
	root.SetArgs([]string{"tax", "calculate", "--rates-file", ratesFile, "--country", "NG", "--amount", "185000"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "amount=185000.00 tax=13875.00 total=198875.00 rate=7.5 source=country")
}

func TestTaxCalculateCmd_RejectsNegativeAmount(t *testing.T) {
	ratesFile := testutil.WriteTestFile(t, "tax-rates.json", []byte(taxRatesJSON))

	root, _ := newRootCmd(t)
	root.SetArgs([]string{"tax", "calculate", "--rates-file", ratesFile, "--amount", "-1"})

	assert.Error(t, root.Execute())
}

func TestCurrencyConvertCmd(t *testing.T) {
	ratesFile := testutil.WriteTestFile(t, "exchange-rates.json", []byte(exchangeRatesJSON))

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"to base", []string{"--amount", "100", "--from", "USD"}, "₦153,846.15", false},
		{"from base", []string{"--amount", "100000", "--from", "NGN", "--to", "usd"}, "$65.00", false},
		{"unknown currency", []string{"--amount", "1", "--from", "JPY"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRootCmd(t)
			root.SetArgs(append([]string{"currency", "convert", "--rates-file", ratesFile}, tt.args...))

			err := root.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestValidateCmds(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{[]string{"validate", "email", "sales@sunpower.ng"}, false},
		{[]string{"validate", "email", "sales@"}, true},
		{[]string{"validate", "taxid", "12345678-0001"}, false},
		{[]string{"validate", "taxid", "ABC"}, true},
		{[]string{"validate", "phone", "+2348012345678"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.args[1]+" "+tt.args[2], func(t *testing.T) {
			root, _ := newRootCmd(t)
			root.SetArgs(tt.args)

			err := root.Execute()
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidValue)
				return
			}
			assert.NoError(t, err)
		})
	}
}
