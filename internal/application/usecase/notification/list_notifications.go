// Package notification contains notification feed use cases.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
)

// NotificationOutput represents a notification in use case outputs.
type NotificationOutput struct {
	ID        int64
	Title     string
	Message   string
	Type      entity.NotificationType
	IsRead    bool
	CreatedAt time.Time
}

// ListNotificationsOutput represents the notification feed.
type ListNotificationsOutput struct {
	Notifications []*NotificationOutput
	UnreadCount   int64
}

// ListNotificationsUseCase handles listing the notification feed.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute returns all notifications newest-first with the unread count.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context) (*ListNotificationsOutput, error) {
	notifications, err := uc.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.CountUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	outputs := make([]*NotificationOutput, len(notifications))
	for i, n := range notifications {
		outputs[i] = &NotificationOutput{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}

	return &ListNotificationsOutput{
		Notifications: outputs,
		UnreadCount:   unread,
	}, nil
}
