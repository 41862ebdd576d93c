package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override (e.g. ELECTRIFY_PAYSTACK_SECRET_KEY)
const EnvPrefix = "ELECTRIFY"

// RateLimitSettings bounds how often a single client may start a payment
type RateLimitSettings struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" validate:"min=1"`
}

// CheckoutSettings holds order pricing knobs
type CheckoutSettings struct {
	// FlatShippingFee is charged once per order, expressed in the base currency
	FlatShippingFee float64 `mapstructure:"flat_shipping_fee" validate:"min=0"`
}

// RestConfig is the configuration of the REST API process
type RestConfig struct {
	Port           string                 `mapstructure:"port" validate:"required,numeric"`
	Database       DatabaseSettings       `mapstructure:"database"`
	Logger         LoggerSettings         `mapstructure:"logger"`
	Auth           AuthSettings           `mapstructure:"auth"`
	Paystack       PaystackSettings       `mapstructure:"paystack"`
	Currency       CurrencySettings       `mapstructure:"currency"`
	Redis          RedisSettings          `mapstructure:"redis"`
	ImageConnector ImageConnectorSettings `mapstructure:"image_connector"`
	RateLimit      RateLimitSettings      `mapstructure:"rate_limit"`
	Checkout       CheckoutSettings       `mapstructure:"checkout"`
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := validate.Struct(&c.RateLimit); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	if err := validate.Struct(&c.Checkout); err != nil {
		return fmt.Errorf("validation failed for CheckoutSettings: %w", err)
	}

	validators := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.Auth,
		&c.Paystack,
		&c.Currency,
		&c.Redis,
		&c.ImageConnector,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("database.type", PostgresDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.db_name", "")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("paystack.secret_key", "")
	v.SetDefault("paystack.base_url", DefaultPaystackBaseURL)
	v.SetDefault("paystack.callback_url", "")
	v.SetDefault("paystack.timeout", 30*time.Second)
	v.SetDefault("currency.base_currency", "NGN")
	v.SetDefault("currency.provider_url", "")
	v.SetDefault("currency.refresh_schedule", "@every 6h")
	v.SetDefault("currency.cache_ttl", time.Hour)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("image_connector.cloud_provider", LocalCloudProvider)
	v.SetDefault("image_connector.connection_string", "")
	v.SetDefault("image_connector.container_name", "product-images")
	v.SetDefault("image_connector.public_base_url", "")
	v.SetDefault("rate_limit.requests_per_second", 1.0)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("checkout.flat_shipping_fee", 0)
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result.
// A missing file is tolerated so the service can be configured purely through the environment.
func InitializeRestConfig(path string) (*RestConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Currency.BaseCurrency = strings.ToUpper(cfg.Currency.BaseCurrency)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
