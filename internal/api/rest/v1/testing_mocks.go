//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

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

// MockTaxService is a mock implementation of TaxService
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) GetTaxRate(ctx context.Context, country, category string) (tax.Resolution, error) {
	args := m.Called(ctx, country, category)
	return args.Get(0).(tax.Resolution), args.Error(1)
}

func (m *MockTaxService) CalculateTax(ctx context.Context, amount decimal.Decimal, country, category string) (decimal.Decimal, tax.Resolution, error) {
	args := m.Called(ctx, amount, country, category)
	return args.Get(0).(decimal.Decimal), args.Get(1).(tax.Resolution), args.Error(2)
}

func (m *MockTaxService) Reload(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockTaxRateAdminService is a mock implementation of TaxRateAdminService
type MockTaxRateAdminService struct {
	mock.Mock
}

func (m *MockTaxRateAdminService) Create(ctx context.Context, input *tax.TaxRateInput) (*tax.TaxRate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tax.TaxRate), args.Error(1)
}

func (m *MockTaxRateAdminService) List(ctx context.Context, query *tax.TaxRateQuery) ([]*tax.TaxRate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tax.TaxRate), args.Error(1)
}

func (m *MockTaxRateAdminService) GetByID(ctx context.Context, id string) (*tax.TaxRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tax.TaxRate), args.Error(1)
}

func (m *MockTaxRateAdminService) UpdateByID(ctx context.Context, id string, input *tax.TaxRateInput) (*tax.TaxRate, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tax.TaxRate), args.Error(1)
}

func (m *MockTaxRateAdminService) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockCurrencyService is a mock implementation of CurrencyService
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) BaseCurrency() string {
	return m.Called().String(0)
}

func (m *MockCurrencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyService) ListRates(ctx context.Context) ([]*currency.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*currency.ExchangeRate), args.Error(1)
}

func (m *MockCurrencyService) Table(ctx context.Context) (*currency.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.RateTable), args.Error(1)
}

func (m *MockCurrencyService) Reload(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockExchangeRateAdminService is a mock implementation of ExchangeRateAdminService
type MockExchangeRateAdminService struct {
	mock.Mock
}

func (m *MockExchangeRateAdminService) UpsertRate(ctx context.Context, code string, rate decimal.Decimal) (*currency.ExchangeRate, error) {
	args := m.Called(ctx, code, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateAdminService) Refresh(ctx context.Context) ([]*currency.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*currency.ExchangeRate), args.Error(1)
}

// MockStorefrontService is a mock implementation of StorefrontService
type MockStorefrontService struct {
	mock.Mock
}

func (m *MockStorefrontService) ListApproved(ctx context.Context, query *products.ProductQuery, displayCurrency string) ([]*products.Product, error) {
	args := m.Called(ctx, query, displayCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*products.Product), args.Error(1)
}

func (m *MockStorefrontService) GetApproved(ctx context.Context, id, displayCurrency string) (*products.Product, error) {
	args := m.Called(ctx, id, displayCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

// MockSupplierProductService is a mock implementation of SupplierProductService
type MockSupplierProductService struct {
	mock.Mock
}

func (m *MockSupplierProductService) Create(ctx context.Context, supplierID string, input *products.ProductInput) (*products.Product, error) {
	args := m.Called(ctx, supplierID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockSupplierProductService) Update(ctx context.Context, supplierID, id string, input *products.ProductInput) (*products.Product, error) {
	args := m.Called(ctx, supplierID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockSupplierProductService) Delete(ctx context.Context, supplierID, id string) error {
	return m.Called(ctx, supplierID, id).Error(0)
}

func (m *MockSupplierProductService) ListOwn(ctx context.Context, supplierID string, query *products.ProductQuery) ([]*products.Product, error) {
	args := m.Called(ctx, supplierID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*products.Product), args.Error(1)
}

func (m *MockSupplierProductService) UploadImages(ctx context.Context, supplierID, id string, form *multipart.Form) (*products.Product, error) {
	args := m.Called(ctx, supplierID, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

// MockAdminProductService is a mock implementation of AdminProductService
type MockAdminProductService struct {
	mock.Mock
}

func (m *MockAdminProductService) ListAll(ctx context.Context, query *products.ProductQuery) ([]*products.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*products.Product), args.Error(1)
}

func (m *MockAdminProductService) Review(ctx context.Context, id string, decision *products.ReviewDecision) (*products.Product, error) {
	args := m.Called(ctx, id, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

// MockSupplierService is a mock implementation of SupplierService
type MockSupplierService struct {
	mock.Mock
}

func (m *MockSupplierService) Register(ctx context.Context, userID string, input *suppliers.RegistrationInput) (*suppliers.Supplier, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*suppliers.Supplier), args.Error(1)
}

func (m *MockSupplierService) GetByUserID(ctx context.Context, userID string) (*suppliers.Supplier, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*suppliers.Supplier), args.Error(1)
}

func (m *MockSupplierService) List(ctx context.Context, query *suppliers.SupplierQuery) ([]*suppliers.Supplier, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*suppliers.Supplier), args.Error(1)
}

func (m *MockSupplierService) UpdateStatus(ctx context.Context, id string, status suppliers.Status) (*suppliers.Supplier, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*suppliers.Supplier), args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureProfile(ctx context.Context, id, email, fullName string) (*users.Profile, error) {
	args := m.Called(ctx, id, email, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*users.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, query *users.ProfileQuery) ([]*users.Profile, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.Profile), args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, id string, role users.Role) (*users.Profile, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, customer *users.Profile, input *orders.CheckoutInput) (*orders.Order, error) {
	args := m.Called(ctx, customer, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, viewer *users.Profile, id string) (*orders.Order, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, viewer *users.Profile, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, viewer, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderService) Count(ctx context.Context, viewer *users.Profile, query *orders.OrderQuery) (int64, error) {
	args := m.Called(ctx, viewer, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status orders.Status) (*orders.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) AttachPaymentReference(ctx context.Context, id, reference string) error {
	return m.Called(ctx, id, reference).Error(0)
}

func (m *MockOrderService) MarkPaid(ctx context.Context, id, reference string, amount decimal.Decimal, currency string) (*orders.Order, error) {
	args := m.Called(ctx, id, reference, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Initialize(ctx context.Context, payer *users.Profile, input *payments.InitializeInput) (*payments.InitializeResult, error) {
	args := m.Called(ctx, payer, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.InitializeResult), args.Error(1)
}

func (m *MockPaymentService) Verify(ctx context.Context, reference string) (*payments.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Transaction), args.Error(1)
}

func (m *MockPaymentService) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	return m.Called(ctx, signature, body).Error(0)
}

// MockNotificationService is a mock implementation of NotificationService
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
