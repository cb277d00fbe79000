// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dompetku/backend/internal/application/usecase/notification"
)

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotificationsResponse represents the notification feed.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// ToListNotificationsResponse maps the feed output to its API representation.
func ToListNotificationsResponse(output *notification.ListNotificationsOutput) ListNotificationsResponse {
	notifications := make([]NotificationResponse, len(output.Notifications))
	for i, n := range output.Notifications {
		notifications[i] = NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}

	return ListNotificationsResponse{
		Notifications: notifications,
		UnreadCount:   output.UnreadCount,
	}
}
