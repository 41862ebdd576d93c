package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
)

// ProfileModel is the GORM database model for marketplace profiles
type ProfileModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Email     string    `gorm:"index;type:varchar(255)"`
	FullName  string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"not null;index;type:varchar(20);default:customer"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts GORM model to domain entity
func (m *ProfileModel) ToDomain() *users.Profile {
	return &users.Profile{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Role:      users.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProfileModel) FromDomain(p *users.Profile) {
	m.ID = p.ID
	m.Email = p.Email
	m.FullName = p.FullName
	m.Role = string(p.Role)
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
