package v1

import (
	"io"
	"net/http"

	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/paystack"
	"github.com/fredriick/Electrify-sub009/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody bounds the size of a gateway webhook payload
const maxWebhookBody = 1 << 20

// PaymentHandler defines the interface for handling Paystack payments
type PaymentHandler interface {
	Initialize(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Webhook(ctx *gin.Context)
}

type paymentHandler struct {
	paymentService payments.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService payments.PaymentService) PaymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// Initialize handles POST /paystack/initialize
func (handler *paymentHandler) Initialize(ctx *gin.Context) {
	var request InitializePaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid payment data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	result, err := handler.paymentService.Initialize(ctx, principal(ctx), request.ToInput())
	if err != nil {
		metrics.RecordPayment("initialize", "error")
		respondError(ctx, err)
		return
	}

	metrics.RecordPayment("initialize", "ok")
	ctx.JSON(http.StatusOK, InitializePaymentResponse{
		AuthorizationURL: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		Reference:        result.Reference,
	})
}

// Verify handles GET /paystack/verify/:reference
func (handler *paymentHandler) Verify(ctx *gin.Context) {
	tx, err := handler.paymentService.Verify(ctx, ctx.Param("reference"))
	if err != nil {
		metrics.RecordPayment("verify", "error")
		respondError(ctx, err)
		return
	}

	metrics.RecordPayment("verify", string(tx.Status))
	ctx.JSON(http.StatusOK, newTransactionResponse(tx))
}

// Webhook handles POST /paystack/webhook. The signature covers the raw body, so it is read before any decoding.
func (handler *paymentHandler) Webhook(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxWebhookBody))
	if err != nil {
		respondBadRequest(ctx, "unable to read webhook body")
		return
	}

	if err := handler.paymentService.HandleWebhook(ctx, ctx.GetHeader(paystack.SignatureHeader), body); err != nil {
		metrics.RecordPayment("webhook", "error")
		respondError(ctx, err)
		return
	}

	metrics.RecordPayment("webhook", "ok")
	ctx.Status(http.StatusOK)
}
