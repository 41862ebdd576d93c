package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM database model for orders
type OrderModel struct {
	ID                 string           `gorm:"primaryKey;type:uuid"`
	OrderNumber        string           `gorm:"not null;uniqueIndex;type:varchar(40)"`
	CustomerID         string           `gorm:"not null;index;type:uuid"`
	CustomerEmail      string           `gorm:"not null;type:varchar(255)"`
	Items              []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Currency           string           `gorm:"not null;type:varchar(3)"`
	Subtotal           decimal.Decimal  `gorm:"not null;type:numeric(14,2)"`
	TaxAmount          decimal.Decimal  `gorm:"not null;type:numeric(14,2)"`
	ShippingAmount     decimal.Decimal  `gorm:"not null;type:numeric(14,2)"`
	Total              decimal.Decimal  `gorm:"not null;type:numeric(14,2)"`
	Status             string           `gorm:"not null;index;type:varchar(20)"`
	PaymentStatus      string           `gorm:"not null;type:varchar(20)"`
	PaymentReference   *string          `gorm:"uniqueIndex;type:varchar(100)"`
	ShippingLine1      string           `gorm:"type:varchar(255)"`
	ShippingLine2      string           `gorm:"type:varchar(255)"`
	ShippingCity       string           `gorm:"type:varchar(100)"`
	ShippingState      string           `gorm:"type:varchar(100)"`
	ShippingCountry    string           `gorm:"type:varchar(2)"`
	ShippingPostalCode string           `gorm:"type:varchar(20)"`
	ShippingPhone      string           `gorm:"type:varchar(30)"`
	PaidAt             *time.Time
	CreatedAt          time.Time `gorm:"not null;index"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM database model for order line items
type OrderItemModel struct {
	ID         string          `gorm:"primaryKey;type:uuid"`
	OrderID    string          `gorm:"not null;index;type:uuid"`
	ProductID  string          `gorm:"not null;index;type:uuid"`
	SupplierID string          `gorm:"not null;index;type:uuid"`
	Name       string          `gorm:"not null;type:varchar(255)"`
	Category   string          `gorm:"not null;type:varchar(50)"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	TaxRate    decimal.Decimal `gorm:"not null;type:numeric(7,4)"`
	TaxAmount  decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	LineTotal  decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
}

// TableName specifies the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	o := &orders.Order{
		ID:               m.ID,
		OrderNumber:      m.OrderNumber,
		CustomerID:       m.CustomerID,
		CustomerEmail:    m.CustomerEmail,
		Currency:         m.Currency,
		Subtotal:         m.Subtotal,
		TaxAmount:        m.TaxAmount,
		ShippingAmount:   m.ShippingAmount,
		Total:            m.Total,
		Status:           orders.Status(m.Status),
		PaymentStatus:    orders.PaymentStatus(m.PaymentStatus),
		PaymentReference: m.PaymentReference,
		ShippingAddress: orders.ShippingAddress{
			Line1:      m.ShippingLine1,
			Line2:      m.ShippingLine2,
			City:       m.ShippingCity,
			State:      m.ShippingState,
			Country:    m.ShippingCountry,
			PostalCode: m.ShippingPostalCode,
			Phone:      m.ShippingPhone,
		},
		PaidAt:    m.PaidAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	o.Items = make([]*orders.OrderItem, len(m.Items))
	for i := range m.Items {
		o.Items[i] = m.Items[i].ToDomain()
	}
	return o
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.OrderNumber = o.OrderNumber
	m.CustomerID = o.CustomerID
	m.CustomerEmail = o.CustomerEmail
	m.Currency = o.Currency
	m.Subtotal = o.Subtotal
	m.TaxAmount = o.TaxAmount
	m.ShippingAmount = o.ShippingAmount
	m.Total = o.Total
	m.Status = string(o.Status)
	m.PaymentStatus = string(o.PaymentStatus)
	m.PaymentReference = o.PaymentReference
	m.ShippingLine1 = o.ShippingAddress.Line1
	m.ShippingLine2 = o.ShippingAddress.Line2
	m.ShippingCity = o.ShippingAddress.City
	m.ShippingState = o.ShippingAddress.State
	m.ShippingCountry = o.ShippingAddress.Country
	m.ShippingPostalCode = o.ShippingAddress.PostalCode
	m.ShippingPhone = o.ShippingAddress.Phone
	m.PaidAt = o.PaidAt
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt

	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i].FromDomain(item)
	}
}

// ToDomain converts GORM model to domain entity
func (m *OrderItemModel) ToDomain() *orders.OrderItem {
	return &orders.OrderItem{
		ID:         m.ID,
		OrderID:    m.OrderID,
		ProductID:  m.ProductID,
		SupplierID: m.SupplierID,
		Name:       m.Name,
		Category:   m.Category,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		TaxRate:    m.TaxRate,
		TaxAmount:  m.TaxAmount,
		LineTotal:  m.LineTotal,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderItemModel) FromDomain(item *orders.OrderItem) {
	m.ID = item.ID
	m.OrderID = item.OrderID
	m.ProductID = item.ProductID
	m.SupplierID = item.SupplierID
	m.Name = item.Name
	m.Category = item.Category
	m.Quantity = item.Quantity
	m.UnitPrice = item.UnitPrice
	m.TaxRate = item.TaxRate
	m.TaxAmount = item.TaxAmount
	m.LineTotal = item.LineTotal
}
