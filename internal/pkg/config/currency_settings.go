package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CurrencySettings configures the exchange-rate manager
type CurrencySettings struct {
	BaseCurrency    string        `mapstructure:"base_currency" validate:"required,len=3,uppercase"`
	ProviderURL     string        `mapstructure:"provider_url" validate:"omitempty,url"`
	RefreshSchedule string        `mapstructure:"refresh_schedule"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl" validate:"min=0"`
}

// Validate checks that all fields in CurrencySettings are valid
func (s *CurrencySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CurrencySettings: %w", err)
	}
	return nil
}

// RedisSettings points at an optional Redis instance shared by API replicas.
// An empty address disables the shared cache.
type RedisSettings struct {
	Addr     string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0,max=15"`
}

// Enabled reports whether a Redis address was configured
func (s *RedisSettings) Enabled() bool {
	return s.Addr != ""
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}
	return nil
}
