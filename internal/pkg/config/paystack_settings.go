package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultPaystackBaseURL is the public Paystack API endpoint
const DefaultPaystackBaseURL = "https://api.paystack.co"

// PaystackSettings holds the payment gateway credentials
type PaystackSettings struct {
	SecretKey   string        `mapstructure:"secret_key" validate:"required"`
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	CallbackURL string        `mapstructure:"callback_url" validate:"omitempty,url"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"min=0"`
}

// Validate checks that all fields in PaystackSettings are valid
func (s *PaystackSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PaystackSettings: %w", err)
	}
	return nil
}
