package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultOrderPageSize = 20

// orderService implements the OrderService interface
type orderService struct {
	repo            orders.OrderRepository
	products        products.ProductRepository
	taxService      tax.TaxService
	currencyService currency.CurrencyService
	notifications   notifications.NotificationService
	shippingFee     decimal.Decimal
	clock           clock.Clock
	logger          logger.Logger
}

// NewOrderService creates a new instance of OrderService. shippingFee is charged once
// per order and is expressed in the base currency of currencyService.
func NewOrderService(
	repo orders.OrderRepository,
	productRepo products.ProductRepository,
	taxService tax.TaxService,
	currencyService currency.CurrencyService,
	notificationService notifications.NotificationService,
	shippingFee decimal.Decimal,
	clk clock.Clock,
	logger logger.Logger,
) (orders.OrderService, error) {
	if shippingFee.IsNegative() {
		return nil, fmt.Errorf("shipping fee must not be negative")
	}
	return &orderService{
		repo:            repo,
		products:        productRepo,
		taxService:      taxService,
		currencyService: currencyService,
		notifications:   notificationService,
		shippingFee:     shippingFee,
		clock:           clk,
		logger:          logger,
	}, nil
}

// Checkout prices the cart and stores a pending, unpaid order
func (s *orderService) Checkout(ctx context.Context, customer *users.Profile, checkout *orders.CheckoutInput) (*orders.Order, error) {
	input := *checkout
	input.ShippingAddress = checkout.ShippingAddress.Normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	orderCurrency, err := currency.Normalize(input.Currency)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		email = customer.Email
	}

	now := s.clock.Now()
	order := &orders.Order{
		ID:              uuid.NewString(),
		CustomerID:      customer.ID,
		CustomerEmail:   email,
		Currency:        orderCurrency,
		Status:          orders.StatusPending,
		PaymentStatus:   orders.PaymentUnpaid,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	order.OrderNumber = orders.NewOrderNumber(now, order.ID)

	for _, line := range mergeCheckoutItems(input.Items) {
		item, err := s.priceItem(ctx, order, line)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	if s.shippingFee.IsPositive() {
		shipping, err := s.currencyService.Convert(ctx, s.shippingFee, s.currencyService.BaseCurrency(), orderCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert shipping fee: %w", err)
		}
		order.ShippingAmount = shipping
	}
	order.Recalculate()

	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	notify(ctx, s.notifications, s.logger, customer.ID, notifications.TypeOrder,
		"Order placed", "Order %s for %s is awaiting payment", order.OrderNumber, currency.Format(order.Total, order.Currency))
	s.logger.Info("Created order with id ", order.ID)
	return order, nil
}

func (s *orderService) priceItem(ctx context.Context, order *orders.Order, line orders.CheckoutItem) (*orders.OrderItem, error) {
	product, err := s.products.GetByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, products.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %s", orders.ErrProductUnavailable, line.ProductID)
		}
		return nil, err
	}
	if !product.Available(line.Quantity) {
		return nil, fmt.Errorf("%w: %s", orders.ErrProductUnavailable, product.Name)
	}

	unitPrice, err := s.currencyService.Convert(ctx, product.Price, product.Currency, order.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to convert price of %s: %w", product.Name, err)
	}
	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))

	taxAmount, resolution, err := s.taxService.CalculateTax(ctx, lineTotal, order.ShippingAddress.Country, string(product.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to calculate tax for %s: %w", product.Name, err)
	}

	return &orders.OrderItem{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		ProductID:  product.ID,
		SupplierID: product.SupplierID,
		Name:       product.Name,
		Category:   string(product.Category),
		Quantity:   line.Quantity,
		UnitPrice:  unitPrice,
		TaxRate:    resolution.Rate,
		TaxAmount:  taxAmount,
		LineTotal:  lineTotal,
	}, nil
}

// mergeCheckoutItems folds repeated products into one line, keeping first-seen order.
func mergeCheckoutItems(items []orders.CheckoutItem) []orders.CheckoutItem {
	index := make(map[string]int, len(items))
	merged := make([]orders.CheckoutItem, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// GetByID returns the order when viewer may see it
func (s *orderService) GetByID(ctx context.Context, viewer *users.Profile, id string) (*orders.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.VisibleTo(viewer) {
		return nil, orders.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, viewer *users.Profile, query *orders.OrderQuery) ([]*orders.Order, error) {
	if query == nil {
		query = &orders.OrderQuery{}
	}
	if query.Limit == 0 {
		query.Limit = defaultOrderPageSize
	}
	orders.Scope(query, viewer)
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

// Count counts the orders viewer may see, optionally filtered by status
func (s *orderService) Count(ctx context.Context, viewer *users.Profile, query *orders.OrderQuery) (int64, error) {
	if query == nil {
		query = &orders.OrderQuery{}
	}
	orders.Scope(query, viewer)
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, query)
}

// UpdateStatus moves an order along the fulfilment status machine
func (s *orderService) UpdateStatus(ctx context.Context, id string, status orders.Status) (*orders.Order, error) {
	if _, err := orders.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !orders.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s to %s", orders.ErrInvalidStatusTransition, order.Status, status)
	}

	now := s.clock.Now()
	if status == orders.StatusPaid {
		// settling by hand still has to take the items out of stock
		if err := s.repo.MarkPaid(ctx, order.ID, now); err != nil {
			return nil, err
		}
		order.PaymentStatus = orders.PaymentPaid
		order.PaidAt = &now
	} else if err := s.repo.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = now

	notify(ctx, s.notifications, s.logger, order.CustomerID, notifications.TypeOrder,
		"Order "+string(status), "Order %s is now %s", order.OrderNumber, status)
	s.logger.Info("Changed status of order ", order.ID, " to ", status)
	return order, nil
}

// AttachPaymentReference links reference to an unpaid order
func (s *orderService) AttachPaymentReference(ctx context.Context, id, reference string) error {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.PaymentStatus == orders.PaymentPaid {
		return orders.ErrOrderAlreadyPaid
	}
	if order.Status != orders.StatusPending {
		return fmt.Errorf("%w: order is %s", orders.ErrInvalidStatusTransition, order.Status)
	}
	return s.repo.SetPaymentReference(ctx, id, reference)
}

// MarkPaid settles order id with the payment carrying reference. Repeated or
// concurrent calls return the paid order unchanged.
func (s *orderService) MarkPaid(ctx context.Context, id, reference string, amount decimal.Decimal, paidCurrency string) (*orders.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == orders.PaymentPaid {
		return order, nil
	}
	if !orders.CanTransition(order.Status, orders.StatusPaid) {
		return nil, fmt.Errorf("%w: %s to %s", orders.ErrInvalidStatusTransition, order.Status, orders.StatusPaid)
	}

	if !strings.EqualFold(paidCurrency, order.Currency) ||
		currency.ToMinorUnits(amount, order.Currency) < currency.ToMinorUnits(order.Total, order.Currency) {
		return nil, fmt.Errorf("%w: paid %s %s, expected %s %s",
			orders.ErrAmountMismatch, amount.String(), paidCurrency, order.Total.String(), order.Currency)
	}

	now := s.clock.Now()
	if err := s.repo.MarkPaid(ctx, order.ID, now); err != nil {
		if errors.Is(err, orders.ErrOrderAlreadyPaid) {
			// settled by a concurrent verify or webhook
			return s.repo.GetByID(ctx, order.ID)
		}
		return nil, err
	}
	order.Status = orders.StatusPaid
	order.PaymentStatus = orders.PaymentPaid
	order.PaidAt = &now
	order.UpdatedAt = now

	notify(ctx, s.notifications, s.logger, order.CustomerID, notifications.TypePayment,
		"Payment received", "We received %s for order %s", currency.Format(order.Total, order.Currency), order.OrderNumber)
	for _, supplierID := range order.SupplierIDs() {
		notify(ctx, s.notifications, s.logger, supplierID, notifications.TypeOrder,
			"New paid order", "Order %s contains your products and is ready for processing", order.OrderNumber)
	}

	s.logger.Info("Marked order ", order.ID, " paid with reference ", reference)
	return order, nil
}
