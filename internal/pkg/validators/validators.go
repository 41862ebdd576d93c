// Package validators holds the field validation rules shared by the REST layer,
// the domain entities and the CLI.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/go-playground/validator/v10"
)

const maxEmailLength = 254

// ErrValidation wraps every struct validation failure returned by Struct
var ErrValidation = errors.New("validation failed")

var (
	baseValidator = validator.New()

	// letters/digits in groups joined by single '-' or '/'
	taxIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-/][A-Za-z0-9]+)*$`)

	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]*[0-9]$`)
)

// ValidateEmail reports whether email is a well formed address.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxEmailLength {
		return false
	}
	return baseValidator.Var(email, "email") == nil
}

// ValidateTaxID reports whether taxID looks like a business tax identification number:
// 8 to 20 characters of letters and digits, optionally grouped with '-' or '/',
// carrying at least 6 digits.
func ValidateTaxID(taxID string) bool {
	taxID = strings.TrimSpace(taxID)
	if len(taxID) < 8 || len(taxID) > 20 {
		return false
	}
	if !taxIDPattern.MatchString(taxID) {
		return false
	}
	return countDigits(taxID) >= 6
}

// ValidatePhone reports whether phone holds 7 to 15 digits with an optional leading '+'.
// Spaces and dashes may separate digit groups.
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := countDigits(phone)
	return digits >= 7 && digits <= 15
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// ValidateCountry reports whether country is an ISO 3166-1 alpha-2 code, ignoring case.
func ValidateCountry(country string) bool {
	country = strings.ToUpper(strings.TrimSpace(country))
	return len(country) == 2 && baseValidator.Var(country, "iso3166_1_alpha2") == nil
}

// ValidateCurrency reports whether code names a currency the marketplace prices in.
func ValidateCurrency(code string) bool {
	return currency.IsSupported(code)
}

// TaxIDValidation is the validator.Func behind the "taxid" tag.
func TaxIDValidation(fl validator.FieldLevel) bool {
	return ValidateTaxID(fl.Field().String())
}

// PhoneValidation is the validator.Func behind the "phone" tag.
func PhoneValidation(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String())
}

// CountryValidation is the validator.Func behind the "country" tag.
func CountryValidation(fl validator.FieldLevel) bool {
	return ValidateCountry(fl.Field().String())
}

// CurrencyValidation is the validator.Func behind the "currency" tag.
func CurrencyValidation(fl validator.FieldLevel) bool {
	return ValidateCurrency(fl.Field().String())
}

// RegisterAll registers the custom tags on v.
func RegisterAll(v *validator.Validate) error {
	if err := v.RegisterValidation("country", CountryValidation); err != nil {
		return fmt.Errorf("failed to register country validator: %w", err)
	}
	if err := v.RegisterValidation("currency", CurrencyValidation); err != nil {
		return fmt.Errorf("failed to register currency validator: %w", err)
	}
	if err := v.RegisterValidation("taxid", TaxIDValidation); err != nil {
		return fmt.Errorf("failed to register taxid validator: %w", err)
	}
	if err := v.RegisterValidation("phone", PhoneValidation); err != nil {
		return fmt.Errorf("failed to register phone validator: %w", err)
	}
	return nil
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	// registration only fails on empty tags or nil funcs
	_ = RegisterAll(v)
	return v
}

// Struct validates s and flattens validator errors into a single readable error.
func Struct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
