package orders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Status is the fulfilment state of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// PaymentStatus is the settlement state of an order
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
	PaymentFailed PaymentStatus = "failed"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrEmptyOrder              = errors.New("order has no items")
	ErrProductUnavailable      = errors.New("product is not available in the requested quantity")
	ErrOrderAlreadyPaid        = errors.New("order is already paid")
	// ErrAmountMismatch is returned when a payment does not cover the order total
	ErrAmountMismatch = errors.New("paid amount does not match order total")
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusPaid, StatusCancelled},
	StatusPaid:       {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// ParseStatus maps a status name to a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ShippingAddress of an order
type ShippingAddress struct {
	Line1      string `json:"line1" validate:"required,max=255"`
	Line2      string `json:"line2,omitempty" validate:"max=255"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"max=100"`
	Country    string `json:"country" validate:"required,country"`
	PostalCode string `json:"postal_code,omitempty" validate:"max=20"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,phone"`
}

// Normalized returns a copy with surrounding spaces trimmed and the country upper-cased
func (a ShippingAddress) Normalized() ShippingAddress {
	return ShippingAddress{
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		Country:    strings.ToUpper(strings.TrimSpace(a.Country)),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Phone:      strings.TrimSpace(a.Phone),
	}
}

// OrderItem is one product line of an order, priced in the order currency
type OrderItem struct {
	ID         string `validate:"required,uuid4"`
	OrderID    string `validate:"required,uuid4"`
	ProductID  string `validate:"required,uuid4"`
	SupplierID string `validate:"required,uuid"`
	Name       string `validate:"required,max=255"`
	Category   string `validate:"required"`
	Quantity   int    `validate:"required,min=1"`
	UnitPrice  decimal.Decimal
	TaxRate    decimal.Decimal
	TaxAmount  decimal.Decimal
	LineTotal  decimal.Decimal
}

// Order entity
type Order struct {
	ID               string       `validate:"required,uuid4"`
	OrderNumber      string       `validate:"required,max=40"`
	CustomerID       string       `validate:"required,uuid"`
	CustomerEmail    string       `validate:"required,email"`
	Items            []*OrderItem `validate:"required,min=1,dive"`
	Currency         string       `validate:"required,len=3"`
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	ShippingAmount   decimal.Decimal
	Total            decimal.Decimal
	Status           Status        `validate:"required,oneof=pending paid processing shipped delivered cancelled"`
	PaymentStatus    PaymentStatus `validate:"required,oneof=unpaid paid failed"`
	PaymentReference *string       `validate:"omitempty,max=100"`
	ShippingAddress  ShippingAddress
	PaidAt           *time.Time
	CreatedAt        time.Time `validate:"required"`
	UpdatedAt        time.Time `validate:"required"`
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrEmptyOrder
	}
	return validators.Struct(o)
}

// Recalculate derives subtotal, tax and total from the items and shipping amount.
func (o *Order) Recalculate() {
	subtotal, taxAmount := decimal.Zero, decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal)
		taxAmount = taxAmount.Add(item.TaxAmount)
	}
	o.Subtotal = subtotal
	o.TaxAmount = taxAmount
	o.Total = subtotal.Add(taxAmount).Add(o.ShippingAmount)
}

// SupplierIDs lists the distinct suppliers with items in the order.
func (o *Order) SupplierIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.SupplierID]; ok {
			continue
		}
		seen[item.SupplierID] = struct{}{}
		ids = append(ids, item.SupplierID)
	}
	return ids
}

// HasSupplier reports whether supplierID sells at least one item of the order.
func (o *Order) HasSupplier(supplierID string) bool {
	for _, item := range o.Items {
		if item.SupplierID == supplierID {
			return true
		}
	}
	return false
}

// NewOrderNumber builds the human readable order number, e.g. ELX-20240131-9F3A1C.
func NewOrderNumber(createdAt time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("ELX-%s-%s", createdAt.UTC().Format("20060102"), suffix)
}

// CheckoutItem is a product and quantity requested by the customer
type CheckoutItem struct {
	ProductID string `validate:"required,uuid4"`
	Quantity  int    `validate:"required,min=1,max=1000"`
}

// CheckoutInput is a customer's cart submission
type CheckoutInput struct {
	Items           []CheckoutItem `validate:"required,min=1,max=100,dive"`
	Currency        string         `validate:"required,len=3"`
	Email           string         `validate:"omitempty,email"`
	ShippingAddress ShippingAddress
}

// Validate for validating CheckoutInput struct
func (in *CheckoutInput) Validate() error {
	if len(in.Items) == 0 {
		return ErrEmptyOrder
	}
	return validators.Struct(in)
}

// OrderQuery filters orders. CustomerID and SupplierID scope the query to one party.
type OrderQuery struct {
	CustomerID string `validate:"omitempty,uuid"`
	SupplierID string `validate:"omitempty,uuid"`
	Status     Status `validate:"omitempty,oneof=pending paid processing shipped delivered cancelled"`
	Limit      int    `validate:"omitempty,min=1,max=100"`
	Offset     int    `validate:"omitempty,min=0"`
}

// Validate for validating OrderQuery struct
func (q *OrderQuery) Validate() error {
	return validators.Struct(q)
}
