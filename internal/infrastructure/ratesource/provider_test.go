//go:build unit
// +build unit

package ratesource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRateProvider_FetchRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/NGN", r.URL.Path)
		_, _ = w.Write([]byte(`{"result":"success","base_code":"NGN","rates":{"NGN":1,"USD":0.00065,"ghs":0.0096,"XAU":"n/a"}}`))
	}))
	defer server.Close()

	p, err := NewHTTPRateProvider(server.URL+"/v6/latest", server.Client(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	rates, err := p.FetchRates(context.Background(), "NGN")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.00065").Equal(rates["USD"]))
	assert.True(t, decimal.RequireFromString("0.0096").Equal(rates["GHS"]))
	assert.NotContains(t, rates, "XAU")
}

func TestHTTPRateProvider_Placeholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		_, _ = w.Write([]byte(`{"rates":{"EUR":0.92}}`))
	}))
	defer server.Close()

	p, err := NewHTTPRateProvider(server.URL+"/latest?base={base}", server.Client(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	rates, err := p.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Len(t, rates, 1)
}

func TestHTTPRateProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"upstream failure", http.StatusServiceUnavailable, `{}`},
		{"provider error", http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`},
		{"wrong base", http.StatusOK, `{"result":"success","base_code":"USD","rates":{"EUR":0.9}}`},
		{"no rates", http.StatusOK, `{"result":"success"}`},
		{"malformed", http.StatusOK, `{"rates":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p, err := NewHTTPRateProvider(server.URL, server.Client(), testutil.SetupTestLogger(t))
			require.NoError(t, err)

			_, err = p.FetchRates(context.Background(), "NGN")
			assert.Error(t, err)
		})
	}
}

func TestNewHTTPRateProvider_RequiresURL(t *testing.T) {
	_, err := NewHTTPRateProvider("", nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
