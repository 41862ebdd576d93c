// cmd/electrify-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/fredriick/Electrify-sub009/internal/api/rest/v1"
	"github.com/fredriick/Electrify-sub009/internal/app"
	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/cache"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/connector"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/paystack"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/ratesource"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/scheduler"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/fredriick/Electrify-sub009/internal/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return serve(ctx, restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  *v1.Services
	auth      *v1.Authenticator
	limiter   *v1.RateLimiter
	scheduler *scheduler.RateScheduler
	closers   []func() error
}

func (d *appDependencies) close(log logger.Logger) {
	for _, c := range d.closers {
		if err := c(); err != nil {
			log.Warn("Failed to release resource: ", err)
		}
	}
}

// releaseOnError closes everything opened so far when *errp is set
func (d *appDependencies) releaseOnError(errp *error, log logger.Logger) {
	if *errp != nil {
		d.close(log)
	}
}

// initializeDependencies sets up all application components. On failure every
// resource opened so far is released.
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (_ *appDependencies, err error) {
	deps := &appDependencies{}
	defer deps.releaseOnError(&err, log)

	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	deps.closers = append(deps.closers, func() error { return persistence.CloseDB(db) })

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	clk := clock.NewSystem()

	// Initialize repositories
	taxRepo, err := persistence.NewGormTaxRateRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tax rate repository: %w", err)
	}
	rateRepo, err := persistence.NewGormExchangeRateRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange rate repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}
	supplierRepo, err := persistence.NewGormSupplierRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier repository: %w", err)
	}
	profileRepo, err := persistence.NewGormProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}
	transactionRepo, err := persistence.NewGormTransactionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction repository: %w", err)
	}
	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}

	// Initialize connectors
	rateCache, err := initializeRateCache(ctx, cfg, log, deps)
	if err != nil {
		return nil, err
	}

	var rateProvider currency.RateProvider
	if cfg.Currency.ProviderURL != "" {
		rateProvider, err = ratesource.NewHTTPRateProvider(cfg.Currency.ProviderURL, nil, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate provider: %w", err)
		}
	} else {
		log.Info("No exchange rate provider configured, rates are managed manually")
	}

	imageConnector, err := connector.NewImageConnector(ctx, &cfg.ImageConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image connector: %w", err)
	}

	gateway, err := paystack.NewClient(&cfg.Paystack, nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create paystack client: %w", err)
	}

	// Initialize services
	notificationService, err := app.NewNotificationService(notificationRepo, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	taxService, err := app.NewTaxService(taxRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tax service: %w", err)
	}
	taxAdminService, err := app.NewTaxRateAdminService(taxRepo, taxService, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tax rate admin service: %w", err)
	}

	currencyService, err := app.NewCurrencyService(cfg.Currency.BaseCurrency, rateRepo, rateCache, cfg.Currency.CacheTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency service: %w", err)
	}
	exchangeRateAdminService, err := app.NewExchangeRateAdminService(currencyService, rateRepo, rateProvider, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange rate admin service: %w", err)
	}

	storefrontService, err := app.NewStorefrontService(productRepo, currencyService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create storefront service: %w", err)
	}
	supplierProductService, err := app.NewSupplierProductService(productRepo, imageConnector, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier product service: %w", err)
	}
	adminProductService, err := app.NewAdminProductService(productRepo, notificationService, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin product service: %w", err)
	}

	userService, err := app.NewUserService(profileRepo, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	supplierService, err := app.NewSupplierService(supplierRepo, profileRepo, notificationService, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier service: %w", err)
	}

	orderService, err := app.NewOrderService(
		orderRepo, productRepo,
		taxService, currencyService, notificationService,
		decimal.NewFromFloat(cfg.Checkout.FlatShippingFee),
		clk, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}

	paymentService, err := app.NewPaymentService(
		gateway, transactionRepo, orderService,
		cfg.Currency.BaseCurrency, cfg.Paystack.CallbackURL,
		clk, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}
	log.Info("Application services initialized successfully")

	deps.services = &v1.Services{
		Tax:               taxService,
		TaxAdmin:          taxAdminService,
		Currency:          currencyService,
		ExchangeRateAdmin: exchangeRateAdminService,
		Storefront:        storefrontService,
		SupplierProducts:  supplierProductService,
		AdminProducts:     adminProductService,
		Suppliers:         supplierService,
		Users:             userService,
		Orders:            orderService,
		Payments:          paymentService,
		Notifications:     notificationService,
	}

	deps.auth, err = v1.NewAuthenticator(&cfg.Auth, userService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}
	deps.limiter = v1.NewRateLimiter(&cfg.RateLimit, log)

	if rateProvider != nil {
		deps.scheduler, err = scheduler.NewRateScheduler(cfg.Currency.RefreshSchedule, exchangeRateAdminService, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate scheduler: %w", err)
		}
	}

	return deps, nil
}

// initializeRateCache connects the shared Redis cache when one is configured
func initializeRateCache(ctx context.Context, cfg *config.RestConfig, log logger.Logger, deps *appDependencies) (currency.RateCache, error) {
	if !cfg.Redis.Enabled() {
		log.Info("Redis not configured, exchange rates are cached in process")
		return nil, nil
	}

	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.closers = append(deps.closers, client.Close)

	rateCache, err := cache.NewRedisRateCache(client, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate cache: %w", err)
	}
	log.Info("Redis exchange rate cache initialized successfully")
	return rateCache, nil
}

// newRouter builds the gin engine with middleware and routes
func newRouter(cfg *config.RestConfig, deps *appDependencies) *gin.Engine {
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", paystack.SignatureHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(metrics.Middleware())

	if cfg.ImageConnector.CloudProvider == config.LocalCloudProvider {
		r.Static("/images", cfg.ImageConnector.ContainerName)
	}

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.auth, deps.limiter)
	return r
}

// serve runs the HTTP server and the rate scheduler until ctx is cancelled or either fails
func serve(ctx context.Context, cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	})

	if deps.scheduler != nil {
		g.Go(func() error {
			return deps.scheduler.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		log.Info("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}
