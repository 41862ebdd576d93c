package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
)

// SupplierModel is the GORM database model for suppliers
type SupplierModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	UserID      string    `gorm:"not null;uniqueIndex;type:uuid"`
	CompanyName string    `gorm:"not null;type:varchar(255)"`
	Email       string    `gorm:"not null;type:varchar(255)"`
	Phone       string    `gorm:"not null;type:varchar(30)"`
	TaxID       string    `gorm:"not null;type:varchar(20)"`
	Country     string    `gorm:"not null;type:varchar(2)"`
	Address     string    `gorm:"type:varchar(500)"`
	Status      string    `gorm:"not null;index;type:varchar(20)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts GORM model to domain entity
func (m *SupplierModel) ToDomain() *suppliers.Supplier {
	return &suppliers.Supplier{
		ID:          m.ID,
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
		Email:       m.Email,
		Phone:       m.Phone,
		TaxID:       m.TaxID,
		Country:     m.Country,
		Address:     m.Address,
		Status:      suppliers.Status(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SupplierModel) FromDomain(s *suppliers.Supplier) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.CompanyName = s.CompanyName
	m.Email = s.Email
	m.Phone = s.Phone
	m.TaxID = s.TaxID
	m.Country = s.Country
	m.Address = s.Address
	m.Status = string(s.Status)
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
