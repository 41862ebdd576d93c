package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/shopspring/decimal"
)

// ExchangeRateModel is the GORM database model for exchange rates against the base currency
type ExchangeRateModel struct {
	Currency  string          `gorm:"primaryKey;type:varchar(3)"`
	Rate      decimal.Decimal `gorm:"not null;type:numeric(24,12)"`
	Source    string          `gorm:"type:varchar(50)"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ExchangeRateModel) TableName() string {
	return "exchange_rates"
}

// ToDomain converts GORM model to domain entity
func (m *ExchangeRateModel) ToDomain() *currency.ExchangeRate {
	return &currency.ExchangeRate{
		Currency:  m.Currency,
		Rate:      m.Rate,
		Source:    m.Source,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ExchangeRateModel) FromDomain(r *currency.ExchangeRate) {
	m.Currency = r.Currency
	m.Rate = r.Rate
	m.Source = r.Source
	m.UpdatedAt = r.UpdatedAt
}
