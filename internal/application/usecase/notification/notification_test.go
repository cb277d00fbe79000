// Package notification contains notification feed use cases.
package notification

import (
	"context"
	"testing"

	"github.com/dompetku/backend/internal/domain/entity"
)

// fakeNotificationRepo is an in-memory NotificationRepository for use case tests.
type fakeNotificationRepo struct {
	notifications []*entity.Notification
	nextID        int64
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.nextID++
	notification.ID = r.nextID
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) FindAll(_ context.Context) ([]*entity.Notification, error) {
	out := make([]*entity.Notification, 0, len(r.notifications))
	for i := len(r.notifications) - 1; i >= 0; i-- {
		out = append(out, r.notifications[i])
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context) error {
	for _, n := range r.notifications {
		n.IsRead = true
	}
	return nil
}

func TestListNotificationsUseCase(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := NewListNotificationsUseCase(repo)
	ctx := context.Background()

	for _, title := range []string{"first", "second"} {
		if err := repo.Create(ctx, entity.NewNotification(title, "msg", entity.NotificationTypeInfo)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	output, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Notifications) != 2 || output.Notifications[0].Title != "second" {
		t.Errorf("expected newest-first feed, got %+v", output.Notifications)
	}
	if output.UnreadCount != 2 {
		t.Errorf("expected 2 unread, got %d", output.UnreadCount)
	}
}

func TestMarkAllReadUseCase(t *testing.T) {
	repo := &fakeNotificationRepo{}
	list := NewListNotificationsUseCase(repo)
	markAll := NewMarkAllReadUseCase(repo)
	ctx := context.Background()

	if err := repo.Create(ctx, entity.NewNotification("t", "m", entity.NotificationTypeAlert)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Marking twice stays settled.
	for i := 0; i < 2; i++ {
		if err := markAll.Execute(ctx); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
		output, err := list.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.UnreadCount != 0 {
			t.Errorf("pass %d: expected 0 unread, got %d", i, output.UnreadCount)
		}
	}
}
