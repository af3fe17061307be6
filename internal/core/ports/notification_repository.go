package ports

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the outbox.
type NotificationRepository interface {
	// Add enqueues a pending notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists the dispatch outcome of a notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetPending retrieves up to limit pending notifications, oldest
	// first, for the dispatch job.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}
