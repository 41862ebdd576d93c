package orders

import (
	"context"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/shopspring/decimal"
)

// OrderService defines checkout and order management.
type OrderService interface {
	// Checkout prices the cart in the requested currency, applies tax per item from
	// the shipping country and product category and stores a pending, unpaid order.
	Checkout(ctx context.Context, customer *users.Profile, input *CheckoutInput) (*Order, error)
	// GetByID returns the order when viewer may see it, ErrOrderNotFound otherwise.
	GetByID(ctx context.Context, viewer *users.Profile, id string) (*Order, error)
	List(ctx context.Context, viewer *users.Profile, query *OrderQuery) ([]*Order, error)
	Count(ctx context.Context, viewer *users.Profile, query *OrderQuery) (int64, error)
	// UpdateStatus moves an order along the fulfilment status machine and notifies the customer.
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	// AttachPaymentReference links a payment reference to an unpaid order.
	AttachPaymentReference(ctx context.Context, id, reference string) error
	// MarkPaid settles order id with the payment carrying reference. It is idempotent,
	// also under concurrent calls, and fails with ErrAmountMismatch when amount does
	// not cover the total.
	MarkPaid(ctx context.Context, id, reference string, amount decimal.Decimal, currency string) (*Order, error)
}

// OrderRepository defines persistence for orders and their items
type OrderRepository interface {
	// Create stores the order together with its items
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	Count(ctx context.Context, query *OrderQuery) (int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	SetPaymentReference(ctx context.Context, id, reference string) error
	// MarkPaid sets the order paid and decrements the stock of every item in one transaction
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
}
