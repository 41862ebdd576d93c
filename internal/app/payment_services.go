package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
	"github.com/google/uuid"
)

// EventChargeSuccess is the webhook event sent when a charge settles
const EventChargeSuccess = "charge.success"

// paymentService implements the PaymentService interface
type paymentService struct {
	gateway         payments.PaymentGateway
	transactions    payments.TransactionRepository
	orderService    orders.OrderService
	defaultCurrency string
	callbackURL     string
	clock           clock.Clock
	logger          logger.Logger
}

// NewPaymentService creates a new instance of PaymentService. defaultCurrency applies to
// payments initialized without a currency or order.
func NewPaymentService(
	gateway payments.PaymentGateway,
	transactions payments.TransactionRepository,
	orderService orders.OrderService,
	defaultCurrency string,
	callbackURL string,
	clk clock.Clock,
	logger logger.Logger,
) (payments.PaymentService, error) {
	code, err := currency.Normalize(defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("invalid default payment currency %q: %w", defaultCurrency, err)
	}
	return &paymentService{
		gateway:         gateway,
		transactions:    transactions,
		orderService:    orderService,
		defaultCurrency: code,
		callbackURL:     callbackURL,
		clock:           clk,
		logger:          logger,
	}, nil
}

// Initialize starts a gateway transaction for payer
func (s *paymentService) Initialize(ctx context.Context, payer *users.Profile, input *payments.InitializeInput) (*payments.InitializeResult, error) {
	req := &payments.InitializeRequest{
		Reference:   newPaymentReference(),
		CallbackURL: input.CallbackURL,
		Metadata:    map[string]string{},
	}
	for k, v := range input.Metadata {
		req.Metadata[k] = v
	}
	if req.CallbackURL == "" {
		req.CallbackURL = s.callbackURL
	}

	var order *orders.Order
	if input.OrderID != "" {
		var err error
		order, err = s.orderService.GetByID(ctx, payer, input.OrderID)
		if err != nil {
			return nil, err
		}
		if order.PaymentStatus == orders.PaymentPaid {
			return nil, orders.ErrOrderAlreadyPaid
		}
		req.Email = order.CustomerEmail
		req.Amount = order.Total
		req.Currency = order.Currency
		req.Metadata["order_id"] = order.ID
		req.Metadata["order_number"] = order.OrderNumber
	} else {
		req.Email = strings.TrimSpace(input.Email)
		if req.Email == "" && payer != nil {
			req.Email = payer.Email
		}
		req.Amount = input.Amount
		req.Currency = input.Currency
		if req.Currency == "" {
			req.Currency = s.defaultCurrency
		}
	}

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	result, err := s.gateway.Initialize(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Reference != "" {
		req.Reference = result.Reference
	}

	if order != nil {
		if err := s.orderService.AttachPaymentReference(ctx, order.ID, req.Reference); err != nil {
			return nil, fmt.Errorf("failed to link payment to order %s: %w", order.ID, err)
		}
	}

	now := s.clock.Now()
	tx := &payments.Transaction{
		ID:               uuid.NewString(),
		Reference:        req.Reference,
		Email:            req.Email,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Status:           payments.StatusPending,
		AuthorizationURL: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if order != nil {
		tx.OrderID = &order.ID
	}
	if payer != nil {
		tx.UserID = &payer.ID
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Initialized payment with reference ", req.Reference)
	return result, nil
}

func (s *paymentService) validateRequest(req *payments.InitializeRequest) error {
	if !validators.ValidateEmail(req.Email) {
		return fmt.Errorf("%w: a valid email is required", payments.ErrInvalidPaymentRequest)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", payments.ErrInvalidPaymentRequest)
	}
	code, err := currency.Normalize(req.Currency)
	if err != nil {
		return fmt.Errorf("%w: %v", payments.ErrInvalidPaymentRequest, err)
	}
	req.Currency = code
	return nil
}

// Verify asks the gateway for the outcome of reference and records it
func (s *paymentService) Verify(ctx context.Context, reference string) (*payments.Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", payments.ErrInvalidPaymentRequest)
	}

	result, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}
	if result.Reference == "" {
		result.Reference = reference
	}
	return s.settle(ctx, result)
}

// HandleWebhook processes a signed gateway event. Events other than charge.success are acknowledged and ignored.
func (s *paymentService) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	event, err := s.gateway.ParseWebhook(signature, body)
	if err != nil {
		return err
	}
	if event.Event != EventChargeSuccess {
		s.logger.Debug("Ignoring payment webhook event ", event.Event)
		return nil
	}

	_, err = s.settle(ctx, &event.Data)
	return err
}

// settle records a gateway outcome and marks the linked order paid on success.
func (s *paymentService) settle(ctx context.Context, result *payments.VerifyResult) (*payments.Transaction, error) {
	now := s.clock.Now()

	tx, err := s.transactions.GetByReference(ctx, result.Reference)
	switch {
	case errors.Is(err, payments.ErrTransactionNotFound):
		tx = &payments.Transaction{
			ID:        uuid.NewString(),
			Reference: result.Reference,
			Email:     result.Email,
			Amount:    result.Amount,
			Currency:  result.Currency,
			CreatedAt: now,
		}
	case err != nil:
		return nil, err
	}

	isNew := err != nil
	tx.Status = result.Status
	tx.GatewayResponse = result.GatewayResponse
	tx.PaidAt = result.PaidAt
	tx.UpdatedAt = now

	if isNew {
		err = s.transactions.Create(ctx, tx)
	} else {
		err = s.transactions.UpdateByID(ctx, tx)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment ", tx.Reference, " is ", tx.Status)

	if tx.Status != payments.StatusSuccess || tx.OrderID == nil {
		return tx, nil
	}
	if _, err := s.orderService.MarkPaid(ctx, *tx.OrderID, tx.Reference, result.Amount, result.Currency); err != nil {
		return nil, fmt.Errorf("payment %s succeeded but the order could not be settled: %w", tx.Reference, err)
	}
	return tx, nil
}

func newPaymentReference() string {
	return "ELX_" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
