// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// NotificationType classifies the severity of a notification.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeAlert   NotificationType = "alert"
)

// Notification is a human-readable event record emitted when debts are
// created, settled or removed.
type Notification struct {
	ID        int64
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification entity.
func NewNotification(title, message string, notificationType NotificationType) *Notification {
	return &Notification{
		Title:     title,
		Message:   message,
		Type:      notificationType,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
}
