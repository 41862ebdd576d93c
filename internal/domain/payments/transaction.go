package payments

import (
	"errors"
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Status of a gateway transaction
type Status string

const (
	StatusPending   Status = "pending"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusAbandoned Status = "abandoned"
)

// ParseGatewayStatus maps a gateway transaction status onto Status. Statuses the
// gateway reports for in-flight payments stay pending.
func ParseGatewayStatus(s string) Status {
	switch s {
	case "success":
		return StatusSuccess
	case "failed", "reversed":
		return StatusFailed
	case "abandoned":
		return StatusAbandoned
	}
	return StatusPending
}

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	// ErrInvalidPaymentRequest is returned when initialization input is missing or malformed
	ErrInvalidPaymentRequest = errors.New("invalid payment request")
)

// GatewayError is a non-2xx answer of the payment gateway. StatusCode is passed through to clients.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (status %d): %s", e.StatusCode, e.Message)
}

// Transaction records one payment attempt
type Transaction struct {
	ID               string  `validate:"required,uuid4"`
	Reference        string  `validate:"required,max=100"`
	OrderID          *string `validate:"omitempty,uuid4"`
	UserID           *string `validate:"omitempty,uuid"`
	Email            string  `validate:"required,email"`
	Amount           decimal.Decimal
	Currency         string `validate:"required,len=3"`
	Status           Status `validate:"required,oneof=pending success failed abandoned"`
	AuthorizationURL string `validate:"omitempty,url"`
	AccessCode       string
	GatewayResponse  string
	PaidAt           *time.Time
	CreatedAt        time.Time `validate:"required"`
	UpdatedAt        time.Time `validate:"required"`
}

// Validate for validating Transaction struct
func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidPaymentRequest)
	}
	return validators.Struct(t)
}

// InitializeInput is what a client posts to start a payment
type InitializeInput struct {
	Email       string
	Amount      decimal.Decimal
	Currency    string
	OrderID     string
	CallbackURL string
	Metadata    map[string]string
}

// InitializeRequest is sent to the gateway
type InitializeRequest struct {
	Email       string
	Amount      decimal.Decimal
	Currency    string
	Reference   string
	CallbackURL string
	Metadata    map[string]string
}

// InitializeResult is the gateway's answer to an initialization
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the gateway's view of a transaction
type VerifyResult struct {
	Reference       string
	Status          Status
	Amount          decimal.Decimal
	Currency        string
	GatewayResponse string
	Email           string
	PaidAt          *time.Time
}

// WebhookEvent is a signed gateway notification
type WebhookEvent struct {
	Event string
	Data  VerifyResult
}
