// Package notification contains notification feed use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/dompetku/backend/internal/application/adapter"
)

// MarkAllReadUseCase handles marking the whole notification feed as read.
type MarkAllReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkAllReadUseCase creates a new MarkAllReadUseCase instance.
func NewMarkAllReadUseCase(notificationRepo adapter.NotificationRepository) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks every notification as read. Running it on an already-read
// feed is a no-op.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context) error {
	if err := uc.notificationRepo.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
