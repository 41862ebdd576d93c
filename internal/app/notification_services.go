package app

import (
	"context"
	"fmt"

	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/google/uuid"
)

const defaultNotificationPageSize = 20

// notificationService implements the NotificationService interface
type notificationService struct {
	repo   notifications.NotificationRepository
	clock  clock.Clock
	logger logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(repo notifications.NotificationRepository, clk clock.Clock, logger logger.Logger) (notifications.NotificationService, error) {
	return &notificationService{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}, nil
}

func (s *notificationService) Notify(ctx context.Context, userID string, kind notifications.Type, title, message string) (*notifications.Notification, error) {
	n := &notifications.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: s.clock.Now(),
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*notifications.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	query := &notifications.NotificationQuery{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("Marked ", n, " notifications read for user ", userID)
	return n, nil
}

// notify sends a notification and only logs failures; the triggering operation has already succeeded.
func notify(ctx context.Context, svc notifications.NotificationService, log logger.Logger, userID string, kind notifications.Type, title string, format string, args ...interface{}) {
	if svc == nil || userID == "" {
		return
	}
	if _, err := svc.Notify(ctx, userID, kind, title, fmt.Sprintf(format, args...)); err != nil {
		log.Warn("Failed to notify user ", userID, ": ", err)
	}
}
