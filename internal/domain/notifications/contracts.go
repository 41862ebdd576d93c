package notifications

import "context"

// NotificationService delivers and reads in-app notifications.
type NotificationService interface {
	Notify(ctx context.Context, userID string, kind Type, title, message string) (*Notification, error)
	ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	// MarkAllRead returns the number of notifications that changed
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// NotificationRepository defines persistence for notifications
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
