package notification

import (
	"errors"
	"fmt"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through a factory method.
var ErrNotificationIsNotConstructed = errors.New("notification must be created via NewNotification or RestoreNotification")

// Channel is the delivery medium of a notification.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Validate checks that the channel is one of the known media.
func (c Channel) Validate() error {
	switch c {
	case ChannelEmail, ChannelSMS:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"channel", fmt.Errorf("%q is not a valid notification channel", string(c)))
	}
}

// String implements fmt.Stringer.
func (c Channel) String() string {
	return string(c)
}

// Status is the dispatch state of an outbox row.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid notification status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// RelatedKind names the entity a notification was triggered by, so support
// can trace an email back to the transition that produced it.
type RelatedKind string

const (
	RelatedOrder       RelatedKind = "order"
	RelatedDeclaration RelatedKind = "declaration"
	RelatedTicket      RelatedKind = "ticket"
	RelatedAccount     RelatedKind = "account"
)

// Notification is an outbox row: a rendered message waiting for dispatch.
// Rows are enqueued in their own transaction, outside the request that
// triggered them, and a cron job drains pending rows through a transport.
type Notification struct {
	guard guard.ConstructorGuard

	id        kernel.UUID
	channel   Channel
	recipient string
	subject   string
	body      string

	status       Status
	errorMessage string

	relatedKind RelatedKind
	relatedID   *kernel.UUID

	createdAt time.Time
	sentAt    *time.Time
}

// NewNotification enqueues a pending notification.
func NewNotification(
	id kernel.UUID,
	channel Channel,
	recipient string,
	subject string,
	body string,
	relatedKind RelatedKind,
	relatedID *kernel.UUID,
) (*Notification, error) {
	n := &Notification{
		guard:       guard.NewConstructorGuard(),
		status:      StatusPending,
		relatedKind: relatedKind,
		createdAt:   time.Now().UTC(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setChannel(channel),
		n.setRecipient(recipient),
		n.setBody(subject, body),
		n.setRelatedID(relatedID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotificationParams carries the persisted state of an outbox row.
type RestoreNotificationParams struct {
	ID           kernel.UUID
	Channel      Channel
	Recipient    string
	Subject      string
	Body         string
	Status       Status
	ErrorMessage string
	RelatedKind  RelatedKind
	RelatedID    *kernel.UUID
	CreatedAt    time.Time
	SentAt       *time.Time
}

// RestoreNotification recreates an outbox row from persistence.
func RestoreNotification(params RestoreNotificationParams) (*Notification, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Channel.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		guard:        guard.NewConstructorGuard(),
		id:           params.ID,
		channel:      params.Channel,
		recipient:    params.Recipient,
		subject:      params.Subject,
		body:         params.Body,
		status:       params.Status,
		errorMessage: params.ErrorMessage,
		relatedKind:  params.RelatedKind,
		relatedID:    params.RelatedID,
		createdAt:    params.CreatedAt,
		sentAt:       params.SentAt,
	}, nil
}

// Validate ensures the notification was created through a factory method.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) Channel() Channel         { return n.channel }
func (n *Notification) Recipient() string        { return n.recipient }
func (n *Notification) Subject() string          { return n.subject }
func (n *Notification) Body() string             { return n.body }
func (n *Notification) Status() Status           { return n.status }
func (n *Notification) ErrorMessage() string     { return n.errorMessage }
func (n *Notification) RelatedKind() RelatedKind { return n.relatedKind }
func (n *Notification) RelatedID() *kernel.UUID  { return n.relatedID }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
func (n *Notification) SentAt() *time.Time       { return n.sentAt }

// MarkSent records a successful dispatch and stamps sentAt once.
func (n *Notification) MarkSent() error {
	if n.status != StatusPending {
		return errs.NewInvalidTransitionError(n.status.String(), StatusSent.String())
	}

	n.status = StatusSent
	if n.sentAt == nil {
		now := time.Now().UTC()
		n.sentAt = &now
	}
	return nil
}

// MarkFailed records a failed dispatch with the transport error.
func (n *Notification) MarkFailed(cause error) error {
	if n.status != StatusPending {
		return errs.NewInvalidTransitionError(n.status.String(), StatusFailed.String())
	}

	n.status = StatusFailed
	if cause != nil {
		n.errorMessage = cause.Error()
	}
	return nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	n.channel = channel
	return nil
}

func (n *Notification) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	n.recipient = recipient
	return nil
}

func (n *Notification) setBody(subject, body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	n.subject = subject
	n.body = body
	return nil
}

func (n *Notification) setRelatedID(relatedID *kernel.UUID) error {
	if relatedID != nil {
		if err := relatedID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("related id", err)
		}
	}
	n.relatedID = relatedID
	return nil
}
