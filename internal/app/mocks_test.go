//go:build unit
// +build unit

package app

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTaxRateRepository is a mock of tax.TaxRateRepository
type MockTaxRateRepository struct {
	mock.Mock
}

func (m *MockTaxRateRepository) Create(ctx context.Context, rate *tax.TaxRate) error {
	return m.Called(ctx, rate).Error(0)
}

func (m *MockTaxRateRepository) List(ctx context.Context, query *tax.TaxRateQuery) ([]*tax.TaxRate, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*tax.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) GetByID(ctx context.Context, id string) (*tax.TaxRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tax.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) UpdateByID(ctx context.Context, rate *tax.TaxRate) error {
	return m.Called(ctx, rate).Error(0)
}

func (m *MockTaxRateRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxRateRepository) ClearDefault(ctx context.Context, exceptID string) error {
	return m.Called(ctx, exceptID).Error(0)
}

// MockExchangeRateRepository is a mock of currency.ExchangeRateRepository
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) List(ctx context.Context) ([]*currency.ExchangeRate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) GetByCurrency(ctx context.Context, code string) (*currency.ExchangeRate, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) Upsert(ctx context.Context, rate *currency.ExchangeRate) error {
	return m.Called(ctx, rate).Error(0)
}

// MockRateProvider is a mock of currency.RateProvider
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) Name() string {
	return "mock-provider"
}

func (m *MockRateProvider) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// MockRateCache is a mock of currency.RateCache
type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) Get(ctx context.Context) ([]*currency.ExchangeRate, bool, error) {
	args := m.Called(ctx)
	var rates []*currency.ExchangeRate
	if args.Get(0) != nil {
		rates = args.Get(0).([]*currency.ExchangeRate)
	}
	return rates, args.Bool(1), args.Error(2)
}

func (m *MockRateCache) Set(ctx context.Context, rates []*currency.ExchangeRate, ttl time.Duration) error {
	return m.Called(ctx, rates, ttl).Error(0)
}

func (m *MockRateCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockProductRepository is a mock of products.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *products.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, query *products.ProductQuery) ([]*products.Product, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*products.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*products.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateByID(ctx context.Context, p *products.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id string, qty int) error {
	return m.Called(ctx, id, qty).Error(0)
}

// MockImageConnector is a mock of products.ImageConnector
type MockImageConnector struct {
	mock.Mock
}

func (m *MockImageConnector) Upload(ctx context.Context, form *multipart.Form, productID string) ([]string, error) {
	args := m.Called(ctx, form, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockImageConnector) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

// MockOrderRepository is a mock of orders.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *orders.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*orders.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, query *orders.OrderQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status orders.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) SetPaymentReference(ctx context.Context, id, reference string) error {
	return m.Called(ctx, id, reference).Error(0)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	return m.Called(ctx, id, paidAt).Error(0)
}

// MockNotificationService is a mock of notifications.NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID string, kind notifications.Type, title, message string) (*notifications.Notification, error) {
	args := m.Called(ctx, userID, kind, title, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*notifications.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	return args.Get(0).([]*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfileRepository is a mock of users.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, p *users.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*users.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context, query *users.ProfileQuery) ([]*users.Profile, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*users.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateRole(ctx context.Context, id string, role users.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockProfileRepository) CountByRole(ctx context.Context, role users.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockSupplierRepository is a mock of suppliers.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, s *suppliers.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id string) (*suppliers.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*suppliers.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByUserID(ctx context.Context, userID string) (*suppliers.Supplier, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*suppliers.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) List(ctx context.Context, query *suppliers.SupplierQuery) ([]*suppliers.Supplier, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*suppliers.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) UpdateByID(ctx context.Context, s *suppliers.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

// MockTransactionRepository is a mock of payments.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *payments.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) GetByReference(ctx context.Context, reference string) (*payments.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateByID(ctx context.Context, tx *payments.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

// MockPaymentGateway is a mock of payments.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Initialize(ctx context.Context, req *payments.InitializeRequest) (*payments.InitializeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.InitializeResult), args.Error(1)
}

func (m *MockPaymentGateway) Verify(ctx context.Context, reference string) (*payments.VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.VerifyResult), args.Error(1)
}

func (m *MockPaymentGateway) ParseWebhook(signature string, body []byte) (*payments.WebhookEvent, error) {
	args := m.Called(signature, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookEvent), args.Error(1)
}
