package v1

import (
	"net/http"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services behind the REST API
type Services struct {
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
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, auth *Authenticator, limiter *RateLimiter) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group(BasePath) // lookup in version file
	v1.Use(auth.Middleware())

	authenticated := RequireAuth()
	supplierOnly := RequireRole(users.RoleSupplier)
	adminOnly := RequireRole(users.RoleAdmin, users.RoleSuperAdmin)
	superAdminOnly := RequireRole(users.RoleSuperAdmin)

	// Tax Routes
	taxHandler := NewTaxHandler(services.Tax, services.TaxAdmin)
	v1.GET("/tax/rate", taxHandler.GetRate)
	v1.POST("/tax/calculate", taxHandler.Calculate)

	// Currency Routes
	currencyHandler := NewCurrencyHandler(services.Currency, services.ExchangeRateAdmin)
	v1.GET("/currencies", currencyHandler.ListCurrencies)
	v1.GET("/currencies/rates", currencyHandler.ListRates)
	v1.GET("/currencies/convert", currencyHandler.Convert)

	// Storefront Routes
	productHandler := NewProductHandler(services.Storefront, services.SupplierProducts, services.AdminProducts)
	v1.GET("/products", productHandler.ListApproved)
	v1.GET("/products/:id", productHandler.GetApproved)

	// Account Routes
	userHandler := NewUserHandler(services.Users)
	v1.GET("/me", authenticated, userHandler.Me)

	supplierHandler := NewSupplierHandler(services.Suppliers)
	v1.POST("/suppliers", authenticated, supplierHandler.Register)
	v1.GET("/suppliers/me", authenticated, supplierHandler.GetOwn)

	notificationHandler := NewNotificationHandler(services.Notifications)
	notificationRoutes := v1.Group("/notifications", authenticated)
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.GET("/unread-count", notificationHandler.UnreadCount)
	notificationRoutes.PATCH("/:id/read", notificationHandler.MarkRead)
	notificationRoutes.POST("/read-all", notificationHandler.MarkAllRead)

	// Order Routes
	orderHandler := NewOrderHandler(services.Orders)
	orderRoutes := v1.Group("/orders", authenticated)
	orderRoutes.POST("", orderHandler.Checkout)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/count", orderHandler.Count)
	orderRoutes.GET("/:id", orderHandler.GetByID)

	// Paystack Routes
	paymentHandler := NewPaymentHandler(services.Payments)
	v1.POST("/paystack/initialize", authenticated, limiter.Middleware(), paymentHandler.Initialize)
	v1.GET("/paystack/verify/:reference", paymentHandler.Verify)
	v1.POST("/paystack/webhook", paymentHandler.Webhook)

	// Supplier Dashboard Routes
	supplierRoutes := v1.Group("/supplier", supplierOnly)
	supplierRoutes.GET("/products", productHandler.ListOwn)
	supplierRoutes.POST("/products", productHandler.CreateOwn)
	supplierRoutes.PUT("/products/:id", productHandler.UpdateOwn)
	supplierRoutes.DELETE("/products/:id", productHandler.DeleteOwn)
	supplierRoutes.POST("/products/:id/images", productHandler.UploadImages)

	// Admin Console Routes
	adminRoutes := v1.Group("/admin", adminOnly)
	adminRoutes.GET("/products", productHandler.ListAll)
	adminRoutes.PATCH("/products/:id/review", productHandler.Review)
	adminRoutes.GET("/suppliers", supplierHandler.List)
	adminRoutes.PATCH("/suppliers/:id/status", supplierHandler.UpdateStatus)
	adminRoutes.GET("/users", userHandler.List)
	adminRoutes.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	adminRoutes.GET("/tax-rates", taxHandler.ListRates)
	adminRoutes.POST("/tax-rates", taxHandler.CreateRate)
	adminRoutes.GET("/tax-rates/:id", taxHandler.GetRateByID)
	adminRoutes.PUT("/tax-rates/:id", taxHandler.UpdateRate)
	adminRoutes.DELETE("/tax-rates/:id", taxHandler.DeleteRate)
	adminRoutes.PUT("/exchange-rates/:currency", currencyHandler.UpsertRate)
	adminRoutes.POST("/exchange-rates/refresh", currencyHandler.RefreshRates)

	// Super Admin Routes
	superAdminRoutes := v1.Group("/super-admin", superAdminOnly)
	superAdminRoutes.PATCH("/users/:id/role", userHandler.UpdateRole)
}
