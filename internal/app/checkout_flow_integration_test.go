//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"

	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCheckoutAndPaystackFlow(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	customer, err := s.Users.EnsureProfile(ctx, uuid.NewString(), "buyer@example.com", "Ada Obi")
	require.NoError(t, err)

	supplierID := uuid.NewString()
	product := persistence.CreateTestProduct(t, supplierID, "185000", 10)
	require.NoError(t, s.DBContext.ProductRepo.Create(ctx, product))

	_, err = s.TaxAdmin.Create(ctx, &tax.TaxRateInput{
		Name: "Nigeria VAT", Country: "NG", Rate: decimal.RequireFromString("7.5"), IsActive: true,
	})
	require.NoError(t, err)

	order, err := s.Orders.Checkout(ctx, customer, &orders.CheckoutInput{
		Items: []orders.CheckoutItem{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: product.ID, Quantity: 1},
		},
		Currency: "NGN",
		ShippingAddress: orders.ShippingAddress{
			Line1: "12 Admiralty Way", City: "Lagos", Country: "ng",
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1, "duplicate cart lines are merged")
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(370000)))
	assert.True(t, order.TaxAmount.Equal(decimal.NewFromInt(27750)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(400250)))

	count, err := s.Orders.Count(ctx, customer, &orders.OrderQuery{Status: orders.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	init, err := s.Payments.Initialize(ctx, customer, &payments.InitializeInput{OrderID: order.ID})
	require.NoError(t, err)
	assert.Contains(t, init.AuthorizationURL, init.Reference)

	tx, err := s.Payments.Verify(ctx, init.Reference)
	require.NoError(t, err)
	assert.Equal(t, payments.StatusSuccess, tx.Status)

	paid, err := s.Orders.GetByID(ctx, customer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPaid, paid.Status)
	assert.Equal(t, orders.PaymentPaid, paid.PaymentStatus)

	stocked, err := s.DBContext.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stocked.Stock)

	// verifying again settles nothing twice
	_, err = s.Payments.Verify(ctx, init.Reference)
	require.NoError(t, err)
	stocked, err = s.DBContext.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stocked.Stock)

	_, err = s.Payments.Initialize(ctx, customer, &payments.InitializeInput{OrderID: order.ID})
	assert.ErrorIs(t, err, orders.ErrOrderAlreadyPaid)

	unread, err := s.Notifications.UnreadCount(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread, "order placed and payment received")
}

// placeOrder checks out two units of a fresh product with 10 in stock
func placeOrder(t *testing.T, s *TestServices) (*users.Profile, *products.Product, *orders.Order) {
	t.Helper()
	ctx := context.Background()

	customer, err := s.Users.EnsureProfile(ctx, uuid.NewString(), "buyer@example.com", "Ada Obi")
	require.NoError(t, err)

	product := persistence.CreateTestProduct(t, uuid.NewString(), "185000", 10)
	require.NoError(t, s.DBContext.ProductRepo.Create(ctx, product))

	order, err := s.Orders.Checkout(ctx, customer, &orders.CheckoutInput{
		Items:           []orders.CheckoutItem{{ProductID: product.ID, Quantity: 2}},
		Currency:        "NGN",
		ShippingAddress: orders.ShippingAddress{Line1: "12 Admiralty Way", City: "Lagos", Country: "NG"},
	})
	require.NoError(t, err)
	return customer, product, order
}

func TestPaystack_ReinitializedOrderSettlesFromEarlierReference(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	customer, product, order := placeOrder(t, s)

	first, err := s.Payments.Initialize(ctx, customer, &payments.InitializeInput{OrderID: order.ID})
	require.NoError(t, err)
	second, err := s.Payments.Initialize(ctx, customer, &payments.InitializeInput{OrderID: order.ID})
	require.NoError(t, err)
	require.NotEqual(t, first.Reference, second.Reference)

	// the customer paid through the first popup
	tx, err := s.Payments.Verify(ctx, first.Reference)
	require.NoError(t, err)
	assert.Equal(t, payments.StatusSuccess, tx.Status)

	paid, err := s.Orders.GetByID(ctx, customer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.PaymentPaid, paid.PaymentStatus)

	_, err = s.Payments.Verify(ctx, second.Reference)
	require.NoError(t, err)

	stocked, err := s.DBContext.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stocked.Stock)
}

func TestOrders_ConcurrentMarkPaidSettlesOnce(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	customer, product, order := placeOrder(t, s)

	init, err := s.Payments.Initialize(ctx, customer, &payments.InitializeInput{OrderID: order.ID})
	require.NoError(t, err)

	var g errgroup.Group
	results := make([]*orders.Order, 4)
	for i := range results {
		i := i
		g.Go(func() error {
			settled, err := s.Orders.MarkPaid(ctx, order.ID, init.Reference, order.Total, order.Currency)
			results[i] = settled
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, settled := range results {
		require.NotNil(t, settled)
		assert.Equal(t, orders.PaymentPaid, settled.PaymentStatus)
	}

	stocked, err := s.DBContext.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stocked.Stock)
}

func TestTaxAdmin_InactiveRateDoesNotApply(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	draft, err := s.TaxAdmin.Create(ctx, &tax.TaxRateInput{
		Name: "Ghana VAT draft", Country: "GH", Rate: decimal.RequireFromString("12.5"), IsActive: false,
	})
	require.NoError(t, err)

	stored, err := s.TaxAdmin.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	resolution, err := s.Tax.GetTaxRate(ctx, "GH", "inverters")
	require.NoError(t, err)
	assert.Equal(t, tax.SourceNone, resolution.Source)
	assert.True(t, resolution.Rate.IsZero())
}
