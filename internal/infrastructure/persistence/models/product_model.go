package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM database model for products
type ProductModel struct {
	ID              string                  `gorm:"primaryKey;type:uuid"`
	SupplierID      string                  `gorm:"not null;index;type:uuid"`
	Name            string                  `gorm:"not null;type:varchar(255)"`
	Description     string                  `gorm:"type:text"`
	Category        string                  `gorm:"not null;index;type:varchar(50)"`
	Brand           string                  `gorm:"type:varchar(100)"`
	Price           decimal.Decimal         `gorm:"not null;type:numeric(14,2)"`
	Currency        string                  `gorm:"not null;type:varchar(3)"`
	Stock           int                     `gorm:"not null;default:0"`
	Status          string                  `gorm:"not null;index;type:varchar(20)"`
	RejectionReason string                  `gorm:"type:varchar(1000)"`
	ImageURLs       []string                `gorm:"serializer:json;type:text"`
	Specifications  products.Specifications `gorm:"serializer:json;type:text"`
	CreatedAt       time.Time               `gorm:"not null;index"`
	UpdatedAt       time.Time               `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *products.Product {
	return &products.Product{
		ID:              m.ID,
		SupplierID:      m.SupplierID,
		Name:            m.Name,
		Description:     m.Description,
		Category:        products.Category(m.Category),
		Brand:           m.Brand,
		Price:           m.Price,
		Currency:        m.Currency,
		Stock:           m.Stock,
		Status:          products.Status(m.Status),
		RejectionReason: m.RejectionReason,
		ImageURLs:       m.ImageURLs,
		Specifications:  m.Specifications,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *products.Product) {
	m.ID = p.ID
	m.SupplierID = p.SupplierID
	m.Name = p.Name
	m.Description = p.Description
	m.Category = string(p.Category)
	m.Brand = p.Brand
	m.Price = p.Price
	m.Currency = p.Currency
	m.Stock = p.Stock
	m.Status = string(p.Status)
	m.RejectionReason = p.RejectionReason
	m.ImageURLs = p.ImageURLs
	m.Specifications = p.Specifications
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
