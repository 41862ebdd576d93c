package v1

import (
	"net/http"

	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// OrderHandler defines the interface for handling order-related operations
type OrderHandler interface {
	Checkout(ctx *gin.Context)
	List(ctx *gin.Context)
	Count(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
}

type orderHandler struct {
	orderService orders.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService orders.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

// orderQuery reads the status, limit and offset filters
func orderQuery(ctx *gin.Context) (*orders.OrderQuery, error) {
	query := &orders.OrderQuery{}
	if status := ctx.Query("status"); status != "" {
		parsed, err := orders.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		query.Status = parsed
	}
	if err := bindPaging(ctx, &query.Limit, &query.Offset); err != nil {
		return nil, err
	}
	return query, nil
}

// Checkout handles POST /orders
func (handler *orderHandler) Checkout(ctx *gin.Context) {
	var request CheckoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid checkout data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	order, err := handler.orderService.Checkout(ctx, principal(ctx), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	metrics.RecordOrderCreated(order.Currency)
	ctx.JSON(http.StatusCreated, newOrderResponse(order))
}

// List handles GET /orders. Customers see their own orders, suppliers the orders
// holding their products and admins every order.
func (handler *orderHandler) List(ctx *gin.Context) {
	query, err := orderQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	list, err := handler.orderService.List(ctx, principal(ctx), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		response = append(response, newOrderResponse(o))
	}
	ctx.JSON(http.StatusOK, response)
}

// Count handles GET /orders/count?status=paid, scoped like List
func (handler *orderHandler) Count(ctx *gin.Context) {
	query, err := orderQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	count, err := handler.orderService.Count(ctx, principal(ctx), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetByID handles GET /orders/:id
func (handler *orderHandler) GetByID(ctx *gin.Context) {
	order, err := handler.orderService.GetByID(ctx, principal(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// UpdateStatus handles PATCH /admin/orders/:id/status
func (handler *orderHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid status data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}
	status, err := orders.ParseStatus(request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	order, err := handler.orderService.UpdateStatus(ctx, ctx.Param("id"), status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}
