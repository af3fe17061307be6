package ports

import (
	"context"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/notification"
)

// StatusChangeNotice describes a committed status change that should reach
// the customer. The notifier renders it into a message and enqueues an
// outbox row; dispatch happens later, outside the request transaction.
type StatusChangeNotice struct {
	Recipient    string
	CustomerName string
	EntityKind   notification.RelatedKind
	EntityID     kernel.UUID
	EntityNumber string
	NewStatus    string
	Note         string
}

// Notifier renders and enqueues customer notifications. Implementations must
// never propagate failures into the transition that triggered them; callers
// treat errors as log-only.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, notice StatusChangeNotice) error

	// NotifyVerificationCode sends a short-lived email verification code
	// to a freshly registered account.
	NotifyVerificationCode(ctx context.Context, recipient, customerName, code string) error
}
