//go:build integration
// +build integration

package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/connector"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/paystack"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestPaystackSecret signs webhooks sent to the fake gateway
const TestPaystackSecret = "sk_test_integration"

// TestShippingFee is the flat shipping fee in the base currency
var TestShippingFee = decimal.NewFromInt(2500)

// FakePaystack answers initialize and verify calls the way Paystack does.
// Verify reports the last initialized amount as paid in full.
type FakePaystack struct {
	Server *httptest.Server

	mu       sync.Mutex
	amount   int64
	currency string
	email    string
}

func newFakePaystack(t *testing.T) *FakePaystack {
	t.Helper()
	fake := &FakePaystack{}
	fake.Server = httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(fake.Server.Close)
	return fake
}

func (f *FakePaystack) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/transaction/initialize":
		var body struct {
			Email     string `json:"email"`
			Amount    int64  `json:"amount"`
			Currency  string `json:"currency"`
			Reference string `json:"reference"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status": false, "message": "bad body"}`))
			return
		}
		f.mu.Lock()
		f.amount, f.currency, f.email = body.Amount, body.Currency, body.Email
		f.mu.Unlock()

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]string{
				"authorization_url": "https://checkout.paystack.com/" + body.Reference,
				"access_code":       "ac_" + body.Reference,
				"reference":         body.Reference,
			},
		})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/transaction/verify/"):
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"reference":        strings.TrimPrefix(r.URL.Path, "/transaction/verify/"),
				"status":           "success",
				"amount":           f.amount,
				"currency":         f.currency,
				"gateway_response": "Successful",
				"paid_at":          "2024-03-01T12:00:00Z",
				"customer":         map[string]string{"email": f.email},
			},
		})

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status": false, "message": "not found"}`))
	}
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	Tax               tax.TaxService
	TaxAdmin          tax.TaxRateAdminService
	Currency          currency.CurrencyService
	ExchangeRateAdmin currency.ExchangeRateAdminService
	Storefront        products.StorefrontService
	SupplierProducts  products.SupplierProductService
	AdminProducts     products.AdminProductService
	Suppliers         suppliers.SupplierService
	Users             users.UserService
	Orders            orders.OrderService
	Payments          payments.PaymentService
	Notifications     notifications.NotificationService

	Paystack  *FakePaystack
	DBContext *persistence.TestContext
}

// SetupTestServices wires every application service against a real database,
// local image storage and a fake Paystack
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	clk := clock.NewSystem()
	dbContext := persistence.SetupTestDB(t, dbType)
	fake := newFakePaystack(t)

	imageConnector, err := connector.NewLocalImageConnector(&config.ImageConnectorSettings{
		CloudProvider: config.LocalCloudProvider,
		ContainerName: t.TempDir(),
	}, log)
	require.NoError(t, err)

	gateway, err := paystack.NewClient(&config.PaystackSettings{
		SecretKey: TestPaystackSecret,
		BaseURL:   fake.Server.URL,
	}, fake.Server.Client(), log)
	require.NoError(t, err)

	s := &TestServices{Paystack: fake, DBContext: dbContext}

	s.Notifications, err = NewNotificationService(dbContext.NotificationRepo, clk, log)
	require.NoError(t, err)
	s.Tax, err = NewTaxService(dbContext.TaxRateRepo, log)
	require.NoError(t, err)
	s.TaxAdmin, err = NewTaxRateAdminService(dbContext.TaxRateRepo, s.Tax, clk, log)
	require.NoError(t, err)
	s.Currency, err = NewCurrencyService("NGN", dbContext.ExchangeRateRepo, nil, 0, log)
	require.NoError(t, err)
	s.ExchangeRateAdmin, err = NewExchangeRateAdminService(s.Currency, dbContext.ExchangeRateRepo, nil, clk, log)
	require.NoError(t, err)
	s.Storefront, err = NewStorefrontService(dbContext.ProductRepo, s.Currency, log)
	require.NoError(t, err)
	s.SupplierProducts, err = NewSupplierProductService(dbContext.ProductRepo, imageConnector, clk, log)
	require.NoError(t, err)
	s.AdminProducts, err = NewAdminProductService(dbContext.ProductRepo, s.Notifications, clk, log)
	require.NoError(t, err)
	s.Users, err = NewUserService(dbContext.ProfileRepo, clk, log)
	require.NoError(t, err)
	s.Suppliers, err = NewSupplierService(dbContext.SupplierRepo, dbContext.ProfileRepo, s.Notifications, clk, log)
	require.NoError(t, err)
	s.Orders, err = NewOrderService(dbContext.OrderRepo, dbContext.ProductRepo, s.Tax, s.Currency, s.Notifications, TestShippingFee, clk, log)
	require.NoError(t, err)
	s.Payments, err = NewPaymentService(gateway, dbContext.TransactionRepo, s.Orders, "NGN", "https://electrify.test/callback", clk, log)
	require.NoError(t, err)

	return s
}
