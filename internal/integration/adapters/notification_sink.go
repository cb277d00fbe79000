// Package adapters implements service adapters for the application layer.
package adapters

import (
	"context"
	"log/slog"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
)

// notificationSink implements adapter.NotificationSink by persisting each
// emitted event to the notification feed.
type notificationSink struct {
	notificationRepo adapter.NotificationRepository
}

// NewNotificationSink creates a new persistence-backed notification sink.
func NewNotificationSink(notificationRepo adapter.NotificationRepository) adapter.NotificationSink {
	return &notificationSink{
		notificationRepo: notificationRepo,
	}
}

// Emit stores the event as an unread notification.
func (s *notificationSink) Emit(ctx context.Context, title, message string, notificationType entity.NotificationType) error {
	notification := entity.NewNotification(title, message, notificationType)
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}

	slog.Debug("Notification emitted",
		"title", title,
		"type", string(notificationType),
	)
	return nil
}
