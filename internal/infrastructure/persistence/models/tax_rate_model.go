package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// TaxRateModel is the GORM database model for tax rates
type TaxRateModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	Name            string          `gorm:"not null;type:varchar(100)"`
	Country         string          `gorm:"index;type:varchar(2)"`
	ProductCategory string          `gorm:"index;type:varchar(50)"`
	Rate            decimal.Decimal `gorm:"not null;type:numeric(7,4)"`
	IsDefault       bool            `gorm:"not null"`
	IsActive        bool            `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TaxRateModel) TableName() string {
	return "tax_rates"
}

// ToDomain converts GORM model to domain entity
func (m *TaxRateModel) ToDomain() *tax.TaxRate {
	return &tax.TaxRate{
		ID:              m.ID,
		Name:            m.Name,
		Country:         m.Country,
		ProductCategory: m.ProductCategory,
		Rate:            m.Rate,
		IsDefault:       m.IsDefault,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TaxRateModel) FromDomain(r *tax.TaxRate) {
	m.ID = r.ID
	m.Name = r.Name
	m.Country = r.Country
	m.ProductCategory = r.ProductCategory
	m.Rate = r.Rate
	m.IsDefault = r.IsDefault
	m.IsActive = r.IsActive
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}
