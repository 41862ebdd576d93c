package products

import (
	"errors"
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Category of solar equipment
type Category string

const (
	CategorySolarPanels       Category = "solar_panels"
	CategoryInverters         Category = "inverters"
	CategoryBatteries         Category = "batteries"
	CategoryChargeControllers Category = "charge_controllers"
	CategoryMounting          Category = "mounting"
	CategoryCablesAccessories Category = "cables_accessories"
	CategoryKits              Category = "kits"
)

// Categories lists every product category.
var Categories = []Category{
	CategorySolarPanels,
	CategoryInverters,
	CategoryBatteries,
	CategoryChargeControllers,
	CategoryMounting,
	CategoryCablesAccessories,
	CategoryKits,
}

// Status of a listing in the review workflow
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotOwner          = errors.New("product belongs to another supplier")
	ErrInvalidCategory   = errors.New("invalid product category")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	// ErrRejectionReason is returned when a rejection carries no reason
	ErrRejectionReason = errors.New("rejection requires a reason")
	// ErrUnsupportedImage is returned for uploads that are not JPEG, PNG, GIF or WebP images
	ErrUnsupportedImage = errors.New("unsupported image type")
	// ErrImageTooLarge is returned for uploads above the connector's size limit
	ErrImageTooLarge = errors.New("image exceeds maximum size")
)

// ParseCategory maps a category name to a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Specifications are the technical details shown on the product page
type Specifications struct {
	PowerRatingW  int `json:"power_rating_w,omitempty" validate:"omitempty,min=0"`
	VoltageV      int `json:"voltage_v,omitempty" validate:"omitempty,min=0"`
	CapacityWh    int `json:"capacity_wh,omitempty" validate:"omitempty,min=0"`
	WarrantyYears int `json:"warranty_years,omitempty" validate:"omitempty,min=0,max=50"`
}

// Product entity
type Product struct {
	ID              string          `validate:"required,uuid4"`
	SupplierID      string          `validate:"required,uuid"`
	Name            string          `validate:"required,min=1,max=255"`
	Description     string          `validate:"max=5000"`
	Category        Category        `validate:"required,oneof=solar_panels inverters batteries charge_controllers mounting cables_accessories kits"`
	Brand           string          `validate:"max=100"`
	Price           decimal.Decimal // in Currency
	Currency        string          `validate:"required,len=3"`
	Stock           int             `validate:"min=0"`
	Status          Status          `validate:"required,oneof=draft pending approved rejected"`
	RejectionReason string          `validate:"max=1000"`
	ImageURLs       []string        `validate:"dive,url"`
	Specifications  Specifications
	CreatedAt       time.Time `validate:"required"`
	UpdatedAt       time.Time `validate:"required"`
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	if err := validators.Struct(p); err != nil {
		return err
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if !currency.IsSupported(p.Currency) {
		return fmt.Errorf("%w: %s", currency.ErrUnsupportedCurrency, p.Currency)
	}
	return nil
}

// Available reports whether qty units can be sold from the storefront.
func (p *Product) Available(qty int) bool {
	return p.Status == StatusApproved && qty > 0 && p.Stock >= qty
}

// ProductInput carries the supplier editable fields
type ProductInput struct {
	Name           string          `validate:"required,min=1,max=255"`
	Description    string          `validate:"max=5000"`
	Category       Category        `validate:"required"`
	Brand          string          `validate:"max=100"`
	Price          decimal.Decimal
	Currency       string `validate:"required,len=3"`
	Stock          int    `validate:"min=0"`
	Specifications Specifications
	// SaveAsDraft keeps the listing out of the review queue
	SaveAsDraft bool
}

// Validate for validating ProductInput struct
func (in *ProductInput) Validate() error {
	if err := validators.Struct(in); err != nil {
		return err
	}
	if _, err := ParseCategory(string(in.Category)); err != nil {
		return err
	}
	if !in.Price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

// ReviewDecision is an admin verdict on a pending listing
type ReviewDecision struct {
	Approve bool
	Reason  string `validate:"max=1000"`
}

// Validate for validating ReviewDecision struct
func (d *ReviewDecision) Validate() error {
	if !d.Approve && d.Reason == "" {
		return ErrRejectionReason
	}
	return validators.Struct(d)
}

// ProductQuery filters product listings
type ProductQuery struct {
	SupplierID string   `validate:"omitempty,uuid"`
	Category   Category `validate:"omitempty,oneof=solar_panels inverters batteries charge_controllers mounting cables_accessories kits"`
	Status     Status   `validate:"omitempty,oneof=draft pending approved rejected"`
	Search     string   `validate:"max=100"`
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Limit      int `validate:"omitempty,min=1,max=100"`
	Offset     int `validate:"omitempty,min=0"`
}

// NewProductQuery returns a query with the default page size
func NewProductQuery() *ProductQuery {
	return &ProductQuery{Limit: 20}
}

// Validate for validating ProductQuery struct
func (q *ProductQuery) Validate() error {
	return validators.Struct(q)
}
