package v1

import (
	"net/http"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// TaxHandler defines the interface for handling tax-related operations
type TaxHandler interface {
	GetRate(ctx *gin.Context)
	Calculate(ctx *gin.Context)
	CreateRate(ctx *gin.Context)
	ListRates(ctx *gin.Context)
	GetRateByID(ctx *gin.Context)
	UpdateRate(ctx *gin.Context)
	DeleteRate(ctx *gin.Context)
}

type taxHandler struct {
	taxService      tax.TaxService
	taxAdminService tax.TaxRateAdminService
}

// NewTaxHandler creates a new TaxHandler
func NewTaxHandler(taxService tax.TaxService, taxAdminService tax.TaxRateAdminService) TaxHandler {
	return &taxHandler{
		taxService:      taxService,
		taxAdminService: taxAdminService,
	}
}

// GetRate handles GET /tax/rate?country=NG&category=inverters
func (handler *taxHandler) GetRate(ctx *gin.Context) {
	country := strings.TrimSpace(ctx.Query("country"))
	category := strings.TrimSpace(ctx.Query("category"))

	resolution, err := handler.taxService.GetTaxRate(ctx, country, category)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTaxResolutionResponse(country, category, resolution))
}

// Calculate handles POST /tax/calculate
func (handler *taxHandler) Calculate(ctx *gin.Context) {
	var request CalculateTaxRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid tax data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	taxAmount, resolution, err := handler.taxService.CalculateTax(ctx, request.Amount, request.Country, request.Category)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CalculateTaxResponse{
		Amount:    request.Amount,
		TaxAmount: taxAmount,
		Total:     request.Amount.Add(taxAmount),
		Rate:      newTaxResolutionResponse(request.Country, request.Category, resolution),
	})
}

// CreateRate handles POST /admin/tax-rates
func (handler *taxHandler) CreateRate(ctx *gin.Context) {
	var request TaxRateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid tax rate data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	rate, err := handler.taxAdminService.Create(ctx, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newTaxRateResponse(rate))
}

// ListRates handles GET /admin/tax-rates with optional country, category, active, limit and offset filters
func (handler *taxHandler) ListRates(ctx *gin.Context) {
	query := tax.NewTaxRateQuery()
	query.Country = strings.ToUpper(ctx.Query("country"))
	query.ProductCategory = ctx.Query("category")
	query.ActiveOnly = strutil.ConvertToBool(ctx.Query("active"), false)

	if err := bindPaging(ctx, &query.Limit, &query.Offset); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}
	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	rates, err := handler.taxAdminService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TaxRateResponse, 0, len(rates))
	for _, rate := range rates {
		response = append(response, newTaxRateResponse(rate))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRateByID handles GET /admin/tax-rates/:id
func (handler *taxHandler) GetRateByID(ctx *gin.Context) {
	rate, err := handler.taxAdminService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTaxRateResponse(rate))
}

// UpdateRate handles PUT /admin/tax-rates/:id
func (handler *taxHandler) UpdateRate(ctx *gin.Context) {
	var request TaxRateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid tax rate data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	rate, err := handler.taxAdminService.UpdateByID(ctx, ctx.Param("id"), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTaxRateResponse(rate))
}

// DeleteRate handles DELETE /admin/tax-rates/:id
func (handler *taxHandler) DeleteRate(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := handler.taxAdminService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
