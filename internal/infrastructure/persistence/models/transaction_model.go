package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/shopspring/decimal"
)

// TransactionModel is the GORM database model for payment transactions
type TransactionModel struct {
	ID               string          `gorm:"primaryKey;type:uuid"`
	Reference        string          `gorm:"not null;uniqueIndex;type:varchar(100)"`
	OrderID          *string         `gorm:"index;type:uuid"`
	UserID           *string         `gorm:"index;type:uuid"`
	Email            string          `gorm:"not null;type:varchar(255)"`
	Amount           decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	Currency         string          `gorm:"not null;type:varchar(3)"`
	Status           string          `gorm:"not null;index;type:varchar(20)"`
	AuthorizationURL string          `gorm:"type:varchar(500)"`
	AccessCode       string          `gorm:"type:varchar(100)"`
	GatewayResponse  string          `gorm:"type:varchar(255)"`
	PaidAt           *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "payment_transactions"
}

// ToDomain converts GORM model to domain entity
func (m *TransactionModel) ToDomain() *payments.Transaction {
	return &payments.Transaction{
		ID:               m.ID,
		Reference:        m.Reference,
		OrderID:          m.OrderID,
		UserID:           m.UserID,
		Email:            m.Email,
		Amount:           m.Amount,
		Currency:         m.Currency,
		Status:           payments.Status(m.Status),
		AuthorizationURL: m.AuthorizationURL,
		AccessCode:       m.AccessCode,
		GatewayResponse:  m.GatewayResponse,
		PaidAt:           m.PaidAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TransactionModel) FromDomain(t *payments.Transaction) {
	m.ID = t.ID
	m.Reference = t.Reference
	m.OrderID = t.OrderID
	m.UserID = t.UserID
	m.Email = t.Email
	m.Amount = t.Amount
	m.Currency = t.Currency
	m.Status = string(t.Status)
	m.AuthorizationURL = t.AuthorizationURL
	m.AccessCode = t.AccessCode
	m.GatewayResponse = t.GatewayResponse
	m.PaidAt = t.PaidAt
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
