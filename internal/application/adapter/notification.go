// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/dompetku/backend/internal/domain/entity"
)

// NotificationSink receives human-readable event descriptions from the
// debt workflows. Emission is fire-and-forget from the caller's
// perspective: callers log a failed emit and continue.
type NotificationSink interface {
	Emit(ctx context.Context, title, message string, notificationType entity.NotificationType) error
}

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create stores a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindAll retrieves every notification, newest-first.
	FindAll(ctx context.Context) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications.
	CountUnread(ctx context.Context) (int64, error)

	// MarkAllRead marks every notification as read.
	MarkAllRead(ctx context.Context) error
}
