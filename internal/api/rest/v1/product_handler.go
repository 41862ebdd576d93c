package v1

import (
	"net/http"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// ProductHandler defines the interface for handling product-related operations
// of the storefront, the supplier dashboard and the admin console
type ProductHandler interface {
	ListApproved(ctx *gin.Context)
	GetApproved(ctx *gin.Context)

	CreateOwn(ctx *gin.Context)
	ListOwn(ctx *gin.Context)
	UpdateOwn(ctx *gin.Context)
	DeleteOwn(ctx *gin.Context)
	UploadImages(ctx *gin.Context)

	ListAll(ctx *gin.Context)
	Review(ctx *gin.Context)
}

type productHandler struct {
	storefrontService      products.StorefrontService
	supplierProductService products.SupplierProductService
	adminProductService    products.AdminProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(storefrontService products.StorefrontService, supplierProductService products.SupplierProductService, adminProductService products.AdminProductService) ProductHandler {
	return &productHandler{
		storefrontService:      storefrontService,
		supplierProductService: supplierProductService,
		adminProductService:    adminProductService,
	}
}

// productQuery reads the shared listing filters: category, status, search, min_price, max_price, limit and offset
func productQuery(ctx *gin.Context) (*products.ProductQuery, error) {
	query := products.NewProductQuery()
	query.Category = products.Category(ctx.Query("category"))
	query.Status = products.Status(ctx.Query("status"))
	query.Search = strings.TrimSpace(ctx.Query("search"))

	var err error
	if query.MinPrice, err = queryDecimal(ctx, "min_price"); err != nil {
		return nil, err
	}
	if query.MaxPrice, err = queryDecimal(ctx, "max_price"); err != nil {
		return nil, err
	}
	if err := bindPaging(ctx, &query.Limit, &query.Offset); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return query, nil
}

// ListApproved handles GET /products. Prices are converted when ?currency= is set.
func (handler *productHandler) ListApproved(ctx *gin.Context) {
	query, err := productQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	list, err := handler.storefrontService.ListApproved(ctx, query, strings.ToUpper(ctx.Query("currency")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponses(list))
}

// GetApproved handles GET /products/:id
func (handler *productHandler) GetApproved(ctx *gin.Context) {
	product, err := handler.storefrontService.GetApproved(ctx, ctx.Param("id"), strings.ToUpper(ctx.Query("currency")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// CreateOwn handles POST /supplier/products
func (handler *productHandler) CreateOwn(ctx *gin.Context) {
	var request ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid product data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	product, err := handler.supplierProductService.Create(ctx, principal(ctx).ID, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newProductResponse(product))
}

// ListOwn handles GET /supplier/products
func (handler *productHandler) ListOwn(ctx *gin.Context) {
	query, err := productQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	list, err := handler.supplierProductService.ListOwn(ctx, principal(ctx).ID, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponses(list))
}

// UpdateOwn handles PUT /supplier/products/:id
func (handler *productHandler) UpdateOwn(ctx *gin.Context) {
	var request ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid product data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	product, err := handler.supplierProductService.Update(ctx, principal(ctx).ID, ctx.Param("id"), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// DeleteOwn handles DELETE /supplier/products/:id
func (handler *productHandler) DeleteOwn(ctx *gin.Context) {
	if err := handler.supplierProductService.Delete(ctx, principal(ctx).ID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UploadImages handles POST /supplier/products/:id/images with the images in the "files" form field
func (handler *productHandler) UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "invalid form data")
		return
	}
	if len(form.File[httputil.FormFilesField]) == 0 {
		respondBadRequest(ctx, "no files in form field %q", httputil.FormFilesField)
		return
	}

	product, err := handler.supplierProductService.UploadImages(ctx, principal(ctx).ID, ctx.Param("id"), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// ListAll handles GET /admin/products
func (handler *productHandler) ListAll(ctx *gin.Context) {
	query, err := productQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	list, err := handler.adminProductService.ListAll(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponses(list))
}

// Review handles PATCH /admin/products/:id/review
func (handler *productHandler) Review(ctx *gin.Context) {
	var request ReviewProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid review data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	product, err := handler.adminProductService.Review(ctx, ctx.Param("id"), &products.ReviewDecision{
		Approve: *request.Approve,
		Reason:  request.Reason,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}
