package v1

import (
	"net/http"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CurrencyHandler defines the interface for handling currency-related operations
type CurrencyHandler interface {
	ListCurrencies(ctx *gin.Context)
	ListRates(ctx *gin.Context)
	Convert(ctx *gin.Context)
	UpsertRate(ctx *gin.Context)
	RefreshRates(ctx *gin.Context)
}

type currencyHandler struct {
	currencyService currency.CurrencyService
	adminService    currency.ExchangeRateAdminService
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(currencyService currency.CurrencyService, adminService currency.ExchangeRateAdminService) CurrencyHandler {
	return &currencyHandler{
		currencyService: currencyService,
		adminService:    adminService,
	}
}

// ListCurrencies handles GET /currencies
func (handler *currencyHandler) ListCurrencies(ctx *gin.Context) {
	supported := currency.Supported()
	response := make([]CurrencyResponse, 0, len(supported))
	for _, c := range supported {
		response = append(response, CurrencyResponse{
			Code:     c.Code,
			Symbol:   c.Symbol,
			Name:     c.Name,
			Decimals: c.Decimals,
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// ListRates handles GET /currencies/rates
func (handler *currencyHandler) ListRates(ctx *gin.Context) {
	rates, err := handler.currencyService.ListRates(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := ExchangeRatesResponse{
		Base:  handler.currencyService.BaseCurrency(),
		Rates: make([]ExchangeRateResponse, 0, len(rates)),
	}
	for _, rate := range rates {
		response.Rates = append(response.Rates, newExchangeRateResponse(rate))
	}
	ctx.JSON(http.StatusOK, response)
}

// Convert handles GET /currencies/convert?amount=100&from=USD&to=NGN
func (handler *currencyHandler) Convert(ctx *gin.Context) {
	amount, err := decimal.NewFromString(ctx.Query("amount"))
	if err != nil {
		respondBadRequest(ctx, "invalid amount %q", ctx.Query("amount"))
		return
	}
	from := strings.ToUpper(ctx.Query("from"))
	to := strings.ToUpper(ctx.DefaultQuery("to", handler.currencyService.BaseCurrency()))

	converted, err := handler.currencyService.Convert(ctx, amount, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Formatted: currency.Format(converted, to),
	})
}

// UpsertRate handles PUT /admin/exchange-rates/:currency
func (handler *currencyHandler) UpsertRate(ctx *gin.Context) {
	var request UpsertExchangeRateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid exchange rate data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	rate, err := handler.adminService.UpsertRate(ctx, ctx.Param("currency"), request.Rate)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newExchangeRateResponse(rate))
}

// RefreshRates handles POST /admin/exchange-rates/refresh
func (handler *currencyHandler) RefreshRates(ctx *gin.Context) {
	rates, err := handler.adminService.Refresh(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := ExchangeRatesResponse{
		Base:  handler.currencyService.BaseCurrency(),
		Rates: make([]ExchangeRateResponse, 0, len(rates)),
	}
	for _, rate := range rates {
		response.Rates = append(response.Rates, newExchangeRateResponse(rate))
	}
	ctx.JSON(http.StatusOK, response)
}
