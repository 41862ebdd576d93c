//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTaxHandler_GetRate(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		country    string
		category   string
		resolution tax.Resolution
		err        error
		wantCode   int
		wantBody   string
	}{
		{
			name:       "country rate",
			url:        "/tax/rate?country=NG&category=inverters",
			country:    "NG",
			category:   "inverters",
			resolution: tax.Resolution{Rate: decimal.RequireFromString("7.5"), Source: tax.SourceCountry, TaxRateID: "rate-1", Name: "Nigeria VAT"},
			wantCode:   http.StatusOK,
			wantBody:   `"source":"country"`,
		},
		{
			name:       "no rule applies",
			url:        "/tax/rate?country=FR",
			country:    "FR",
			resolution: tax.Resolution{Rate: decimal.Zero, Source: tax.SourceNone},
			wantCode:   http.StatusOK,
			wantBody:   `"source":"none"`,
		},
		{
			name:     "repository failure is masked",
			url:      "/tax/rate?country=NG",
			country:  "NG",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxService := new(MockTaxService)
			taxService.On("GetTaxRate", mock.Anything, tt.country, tt.category).Return(tt.resolution, tt.err)

			handler := NewTaxHandler(taxService, new(MockTaxRateAdminService))
			c, w := newTestContext("GET", tt.url, "", nil)

			handler.GetRate(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			taxService.AssertExpectations(t)
		})
	}
}

func TestTaxHandler_Calculate(t *testing.T) {
	taxService := new(MockTaxService)
	resolution := tax.Resolution{Rate: decimal.NewFromInt(10), Source: tax.SourceCategory, Name: "Batteries"}
	taxService.On("CalculateTax", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(200))
	}), "NG", "batteries").Return(decimal.NewFromInt(20), resolution, nil)

	handler := NewTaxHandler(taxService, new(MockTaxRateAdminService))
	c, w := newTestContext("POST", "/tax/calculate", `{"amount":"200","country":"NG","category":"batteries"}`, nil)

	handler.Calculate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tax_amount":"20"`)
	assert.Contains(t, w.Body.String(), `"total":"220"`)
	taxService.AssertExpectations(t)
}

func TestTaxHandler_Calculate_NegativeAmount(t *testing.T) {
	taxService := new(MockTaxService)
	handler := NewTaxHandler(taxService, new(MockTaxRateAdminService))
	c, w := newTestContext("POST", "/tax/calculate", `{"amount":"-5","country":"NG"}`, nil)

	handler.Calculate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	taxService.AssertNotCalled(t, "CalculateTax", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaxHandler_CreateRate(t *testing.T) {
	adminService := new(MockTaxRateAdminService)
	now := time.Now()
	created := &tax.TaxRate{
		ID:        "5f1f1d3a-7d1e-4c2b-9a0e-3c4d5e6f7a8b",
		Name:      "Nigeria VAT",
		Country:   "NG",
		Rate:      decimal.RequireFromString("7.5"),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	adminService.On("Create", mock.Anything, mock.MatchedBy(func(in *tax.TaxRateInput) bool {
		return in.Name == "Nigeria VAT" && in.Country == "NG" && in.IsActive && in.Rate.Equal(decimal.RequireFromString("7.5"))
	})).Return(created, nil)

	handler := NewTaxHandler(new(MockTaxService), adminService)
	c, w := newTestContext("POST", "/admin/tax-rates", `{"name":"Nigeria VAT","country":"NG","rate":7.5}`, testProfile(testAdminID, users.RoleAdmin))

	handler.CreateRate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)
	adminService.AssertExpectations(t)
}

func TestTaxHandler_CreateRate_InvalidRate(t *testing.T) {
	adminService := new(MockTaxRateAdminService)
	adminService.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: got 120", tax.ErrInvalidRate))

	handler := NewTaxHandler(new(MockTaxService), adminService)
	c, w := newTestContext("POST", "/admin/tax-rates", `{"name":"Too much","rate":120}`, testProfile(testAdminID, users.RoleAdmin))

	handler.CreateRate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "between 0 and 100")
}

func TestTaxHandler_GetRateByID_NotFound(t *testing.T) {
	adminService := new(MockTaxRateAdminService)
	adminService.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: missing", tax.ErrTaxRateNotFound))

	handler := NewTaxHandler(new(MockTaxService), adminService)
	c, w := newTestContext("GET", "/admin/tax-rates/missing", "", testProfile(testAdminID, users.RoleAdmin), gin.Param{Key: "id", Value: "missing"})

	handler.GetRateByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaxHandler_ListRates_Filters(t *testing.T) {
	adminService := new(MockTaxRateAdminService)
	adminService.On("List", mock.Anything, mock.MatchedBy(func(q *tax.TaxRateQuery) bool {
		return q.Country == "NG" && q.ActiveOnly && q.Limit == 10
	})).Return([]*tax.TaxRate{}, nil)

	handler := NewTaxHandler(new(MockTaxService), adminService)
	c, w := newTestContext("GET", "/admin/tax-rates?country=ng&active=true&limit=10", "", testProfile(testAdminID, users.RoleAdmin))

	handler.ListRates(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	adminService.AssertExpectations(t)
}

func TestTaxHandler_DeleteRate(t *testing.T) {
	adminService := new(MockTaxRateAdminService)
	adminService.On("DeleteByID", mock.Anything, "rate-1").Return(nil)

	handler := NewTaxHandler(new(MockTaxService), adminService)
	c, _ := newTestContext("DELETE", "/admin/tax-rates/rate-1", "", testProfile(testAdminID, users.RoleAdmin), gin.Param{Key: "id", Value: "rate-1"})

	handler.DeleteRate(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	adminService.AssertExpectations(t)
}
