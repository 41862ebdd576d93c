// Package notifications holds in-app messages shown to customers, suppliers and admins.
package notifications

import (
	"errors"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
)

// Type groups notifications by the event that produced them
type Type string

const (
	TypeOrder    Type = "order"
	TypePayment  Type = "payment"
	TypeProduct  Type = "product"
	TypeSupplier Type = "supplier"
	TypeSystem   Type = "system"
)

// ErrNotificationNotFound is returned when the notification does not exist or belongs to another user
var ErrNotificationNotFound = errors.New("notification not found")

// Notification entity
type Notification struct {
	ID        string    `validate:"required,uuid4"`
	UserID    string    `validate:"required,uuid"`
	Title     string    `validate:"required,min=1,max=200"`
	Message   string    `validate:"required,min=1,max=2000"`
	Type      Type      `validate:"required,oneof=order payment product supplier system"`
	Read      bool
	CreatedAt time.Time `validate:"required"`
}

// Validate for validating Notification struct
func (n *Notification) Validate() error {
	return validators.Struct(n)
}

// NotificationQuery selects the notifications of one user
type NotificationQuery struct {
	UserID     string `validate:"required,uuid"`
	UnreadOnly bool
	Limit      int `validate:"omitempty,min=1,max=100"`
	Offset     int `validate:"omitempty,min=0"`
}

// Validate for validating NotificationQuery struct
func (q *NotificationQuery) Validate() error {
	return validators.Struct(q)
}
