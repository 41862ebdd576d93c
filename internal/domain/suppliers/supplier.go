// Package suppliers holds the businesses selling on the marketplace.
package suppliers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
)

// Status of a supplier account
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusSuspended Status = "suspended"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrSupplierExists is returned when a user registers a second supplier account
	ErrSupplierExists = errors.New("user already has a supplier account")
	ErrInvalidStatus  = errors.New("invalid supplier status")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidTaxID   = errors.New("invalid tax identification number")
	ErrInvalidPhone   = errors.New("invalid phone number")
)

// ParseStatus maps a status name to a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusSuspended:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Supplier entity
type Supplier struct {
	ID          string    `validate:"required,uuid4"`
	UserID      string    `validate:"required,uuid"`
	CompanyName string    `validate:"required,min=2,max=255"`
	Email       string    `validate:"required,email"`
	Phone       string    `validate:"required,phone"`
	TaxID       string    `validate:"required,taxid"`
	Country     string    `validate:"required,iso3166_1_alpha2"`
	Address     string    `validate:"max=500"`
	Status      Status    `validate:"required,oneof=pending approved suspended"`
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time `validate:"required"`
}

// Validate for validating Supplier struct
func (s *Supplier) Validate() error {
	return validators.Struct(s)
}

// RegistrationInput is what a user submits to become a supplier
type RegistrationInput struct {
	CompanyName string
	Email       string
	Phone       string
	TaxID       string
	Country     string
	Address     string
}

// Normalize trims every field and upper-cases the country code.
func (in *RegistrationInput) Normalize() {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.TaxID = strings.ToUpper(strings.TrimSpace(in.TaxID))
	in.Country = strings.ToUpper(strings.TrimSpace(in.Country))
	in.Address = strings.TrimSpace(in.Address)
}

// Validate checks the contact details, reporting the first offending field with a sentinel error.
func (in *RegistrationInput) Validate() error {
	if !validators.ValidateEmail(in.Email) {
		return ErrInvalidEmail
	}
	if !validators.ValidateTaxID(in.TaxID) {
		return ErrInvalidTaxID
	}
	if !validators.ValidatePhone(in.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// SupplierQuery filters the admin listing of suppliers
type SupplierQuery struct {
	Status Status `validate:"omitempty,oneof=pending approved suspended"`
	Limit  int    `validate:"omitempty,min=1,max=500"`
	Offset int    `validate:"omitempty,min=0"`
}

// Validate for validating SupplierQuery struct
func (q *SupplierQuery) Validate() error {
	return validators.Struct(q)
}
