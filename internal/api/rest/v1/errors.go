package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// errorStatuses maps domain errors onto HTTP status codes; the first match wins
var errorStatuses = []struct {
	err    error
	status int
}{
	{tax.ErrTaxRateNotFound, http.StatusNotFound},
	{products.ErrProductNotFound, http.StatusNotFound},
	{orders.ErrOrderNotFound, http.StatusNotFound},
	{suppliers.ErrSupplierNotFound, http.StatusNotFound},
	{users.ErrProfileNotFound, http.StatusNotFound},
	{notifications.ErrNotificationNotFound, http.StatusNotFound},
	{payments.ErrTransactionNotFound, http.StatusNotFound},
	{currency.ErrRateNotFound, http.StatusNotFound},

	{products.ErrNotOwner, http.StatusForbidden},

	{suppliers.ErrSupplierExists, http.StatusConflict},
	{orders.ErrOrderAlreadyPaid, http.StatusConflict},
	{orders.ErrInvalidStatusTransition, http.StatusConflict},
	{products.ErrInsufficientStock, http.StatusConflict},
	{users.ErrLastSuperAdmin, http.StatusConflict},

	{orders.ErrProductUnavailable, http.StatusUnprocessableEntity},
	{orders.ErrAmountMismatch, http.StatusUnprocessableEntity},

	{payments.ErrInvalidSignature, http.StatusUnauthorized},

	{currency.ErrNoRateProvider, http.StatusServiceUnavailable},

	{products.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
	{products.ErrUnsupportedImage, http.StatusUnsupportedMediaType},

	{tax.ErrInvalidRate, http.StatusBadRequest},
	{tax.ErrRatePrecision, http.StatusBadRequest},
	{tax.ErrNegativeAmount, http.StatusBadRequest},
	{currency.ErrUnsupportedCurrency, http.StatusBadRequest},
	{currency.ErrInvalidExchangeRate, http.StatusBadRequest},
	{products.ErrInvalidCategory, http.StatusBadRequest},
	{products.ErrInvalidPrice, http.StatusBadRequest},
	{products.ErrInvalidQuantity, http.StatusBadRequest},
	{products.ErrRejectionReason, http.StatusBadRequest},
	{suppliers.ErrInvalidStatus, http.StatusBadRequest},
	{suppliers.ErrInvalidEmail, http.StatusBadRequest},
	{suppliers.ErrInvalidTaxID, http.StatusBadRequest},
	{suppliers.ErrInvalidPhone, http.StatusBadRequest},
	{users.ErrInvalidRole, http.StatusBadRequest},
	{orders.ErrInvalidStatus, http.StatusBadRequest},
	{orders.ErrEmptyOrder, http.StatusBadRequest},
	{payments.ErrInvalidPaymentRequest, http.StatusBadRequest},
	{validators.ErrValidation, http.StatusBadRequest},
}

// statusOf returns the HTTP status for err. Gateway errors keep the upstream status.
func statusOf(err error) int {
	var gatewayErr *payments.GatewayError
	if errors.As(err, &gatewayErr) {
		if gatewayErr.StatusCode >= 400 && gatewayErr.StatusCode <= 599 {
			return gatewayErr.StatusCode
		}
		return http.StatusBadGateway
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as an ErrorResponse. Internal errors are logged and masked.
func respondError(ctx *gin.Context, err error) {
	status := statusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		message = "internal server error"
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

// respondBadRequest writes a 400 with a formatted message
func respondBadRequest(ctx *gin.Context, format string, args ...interface{}) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf(format, args...)})
}
