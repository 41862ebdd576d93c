package models

import (
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
)

// NotificationModel is the GORM database model for notifications
type NotificationModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"not null;index:idx_notifications_user_read;type:uuid"`
	Title     string    `gorm:"not null;type:varchar(200)"`
	Message   string    `gorm:"not null;type:text"`
	Type      string    `gorm:"not null;type:varchar(20)"`
	Read      bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      notifications.Type(m.Type),
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.UserID = n.UserID
	m.Title = n.Title
	m.Message = n.Message
	m.Type = string(n.Type)
	m.Read = n.Read
	m.CreatedAt = n.CreatedAt
}
