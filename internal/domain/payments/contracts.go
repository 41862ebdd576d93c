package payments

import (
	"context"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
)

// PaymentGateway is the hosted payment API
type PaymentGateway interface {
	Initialize(ctx context.Context, req *InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
	// ParseWebhook checks the signature of a webhook body and decodes it
	ParseWebhook(signature string, body []byte) (*WebhookEvent, error)
}

// PaymentService defines the checkout payment flow.
type PaymentService interface {
	// Initialize starts a gateway transaction. When input names an order, the order's
	// total, currency and customer email take precedence over the input values.
	Initialize(ctx context.Context, payer *users.Profile, input *InitializeInput) (*InitializeResult, error)
	// Verify asks the gateway for the outcome of reference, records it and settles
	// the linked order on success.
	Verify(ctx context.Context, reference string) (*Transaction, error)
	// HandleWebhook processes a signed gateway event.
	HandleWebhook(ctx context.Context, signature string, body []byte) error
}

// TransactionRepository defines persistence for transactions
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	GetByReference(ctx context.Context, reference string) (*Transaction, error)
	UpdateByID(ctx context.Context, tx *Transaction) error
}
