package ports

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
)

// Transport delivers a rendered notification over its channel. The dispatch
// job drains the outbox through this port; the shipped implementation logs
// instead of talking to a real SMTP or SMS gateway.
type Transport interface {
	Send(ctx context.Context, n *notification.Notification) error
}
