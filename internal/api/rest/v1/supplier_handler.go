package v1

import (
	"net/http"

	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"

	"github.com/gin-gonic/gin"
)

// SupplierHandler defines the interface for handling supplier onboarding and moderation
type SupplierHandler interface {
	Register(ctx *gin.Context)
	GetOwn(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
}

type supplierHandler struct {
	supplierService suppliers.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService suppliers.SupplierService) SupplierHandler {
	return &supplierHandler{supplierService: supplierService}
}

// Register handles POST /suppliers
func (handler *supplierHandler) Register(ctx *gin.Context) {
	var request SupplierRegistrationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid supplier data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	supplier, err := handler.supplierService.Register(ctx, principal(ctx).ID, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newSupplierResponse(supplier))
}

// GetOwn handles GET /suppliers/me
func (handler *supplierHandler) GetOwn(ctx *gin.Context) {
	supplier, err := handler.supplierService.GetByUserID(ctx, principal(ctx).ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSupplierResponse(supplier))
}

// List handles GET /admin/suppliers?status=pending
func (handler *supplierHandler) List(ctx *gin.Context) {
	query := &suppliers.SupplierQuery{Status: suppliers.Status(ctx.Query("status"))}
	if err := bindPaging(ctx, &query.Limit, &query.Offset); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}
	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	list, err := handler.supplierService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		response = append(response, newSupplierResponse(s))
	}
	ctx.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /admin/suppliers/:id/status
func (handler *supplierHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid status data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}
	status, err := suppliers.ParseStatus(request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	supplier, err := handler.supplierService.UpdateStatus(ctx, ctx.Param("id"), status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSupplierResponse(supplier))
}
