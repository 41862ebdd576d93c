//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	ProfileRepo      users.ProfileRepository
	SupplierRepo     suppliers.SupplierRepository
	ProductRepo      products.ProductRepository
	OrderRepo        orders.OrderRepository
	TransactionRepo  payments.TransactionRepository
	NotificationRepo notifications.NotificationRepository
	TaxRateRepo      tax.TaxRateRepository
	ExchangeRateRepo currency.ExchangeRateRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	tc := &TestContext{DB: db}
	tc.ProfileRepo, err = NewGormProfileRepository(db, log)
	require.NoError(t, err)
	tc.SupplierRepo, err = NewGormSupplierRepository(db, log)
	require.NoError(t, err)
	tc.ProductRepo, err = NewGormProductRepository(db, log)
	require.NoError(t, err)
	tc.OrderRepo, err = NewGormOrderRepository(db, log)
	require.NoError(t, err)
	tc.TransactionRepo, err = NewGormTransactionRepository(db, log)
	require.NoError(t, err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, log)
	require.NoError(t, err)
	tc.TaxRateRepo, err = NewGormTaxRateRepository(db, log)
	require.NoError(t, err)
	tc.ExchangeRateRepo, err = NewGormExchangeRateRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestProduct returns an approved product of supplierID with the given stock
func CreateTestProduct(t *testing.T, supplierID string, price string, stock int) *products.Product {
	t.Helper()

	now := time.Now().UTC()
	return &products.Product{
		ID:          uuid.NewString(),
		SupplierID:  supplierID,
		Name:        "Mono 450W panel",
		Description: "Half-cut monocrystalline module",
		Category:    products.CategorySolarPanels,
		Brand:       "Helios",
		Price:       decimal.RequireFromString(price),
		Currency:    "NGN",
		Stock:       stock,
		Status:      products.StatusApproved,
		ImageURLs:   []string{"https://cdn.example.com/p/450w.jpg"},
		Specifications: products.Specifications{
			PowerRatingW:  450,
			WarrantyYears: 25,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestOrder returns a pending order of customerID buying qty units of each product
func CreateTestOrder(t *testing.T, customerID string, qty int, items ...*products.Product) *orders.Order {
	t.Helper()

	now := time.Now().UTC()
	order := &orders.Order{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		CustomerEmail: "buyer@example.com",
		Currency:      "NGN",
		Status:        orders.StatusPending,
		PaymentStatus: orders.PaymentUnpaid,
		ShippingAddress: orders.ShippingAddress{
			Line1:   "12 Marina Road",
			City:    "Lagos",
			State:   "Lagos",
			Country: "NG",
			Phone:   "+2348012345678",
		},
		ShippingAmount: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	order.OrderNumber = orders.NewOrderNumber(now, order.ID)

	for _, p := range items {
		unit := p.Price
		order.Items = append(order.Items, &orders.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			ProductID:  p.ID,
			SupplierID: p.SupplierID,
			Name:       p.Name,
			Category:   string(p.Category),
			Quantity:   qty,
			UnitPrice:  unit,
			TaxRate:    decimal.Zero,
			TaxAmount:  decimal.Zero,
			LineTotal:  unit.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	order.Recalculate()
	return order
}
