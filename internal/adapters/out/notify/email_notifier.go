// Package notify renders customer notifications and enqueues them in the
// outbox. Enqueueing runs in its own transaction, separate from the workflow
// transition that triggered it, so a notification failure never rolls back a
// committed status change.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/ports"

	"github.com/sirupsen/logrus"
)

var statusChangeTemplate = template.Must(template.New("status_change").Parse(`<html>
<body>
<p>Hello {{.CustomerName}},</p>
<p>Your {{.EntityKind}} <strong>{{.EntityNumber}}</strong> is now <strong>{{.NewStatus}}</strong>.</p>
{{if .Note}}<p>{{.Note}}</p>{{end}}
<p>Thank you for staying with us.</p>
</body>
</html>`))

var verificationTemplate = template.Must(template.New("verification").Parse(`<html>
<body>
<p>Hello {{.CustomerName}},</p>
<p>Your verification code is <strong>{{.Code}}</strong>. It expires in 5 minutes.</p>
</body>
</html>`))

// EmailNotifier implements ports.Notifier by rendering HTML emails and
// enqueueing them as outbox rows.
type EmailNotifier struct {
	uowFactory ports.UnitOfWorkFactory
	log        *logrus.Logger
}

// NewEmailNotifier creates a notifier that enqueues rendered emails.
func NewEmailNotifier(uowFactory ports.UnitOfWorkFactory, log *logrus.Logger) *EmailNotifier {
	return &EmailNotifier{uowFactory: uowFactory, log: log}
}

// NotifyStatusChange renders a status change email and enqueues it. Errors
// are logged here; callers are free to ignore the return value.
func (n *EmailNotifier) NotifyStatusChange(ctx context.Context, notice ports.StatusChangeNotice) error {
	subject := fmt.Sprintf("Your %s %s is now %s", notice.EntityKind, notice.EntityNumber, notice.NewStatus)

	var body bytes.Buffer
	if err := statusChangeTemplate.Execute(&body, notice); err != nil {
		n.log.WithError(err).Warn("render status change notification")
		return err
	}

	entityID := notice.EntityID
	return n.enqueue(ctx, notice.Recipient, subject, body.String(), notice.EntityKind, &entityID)
}

// NotifyVerificationCode renders a verification email and enqueues it.
func (n *EmailNotifier) NotifyVerificationCode(ctx context.Context, recipient, customerName, code string) error {
	var body bytes.Buffer
	err := verificationTemplate.Execute(&body, struct {
		CustomerName string
		Code         string
	}{CustomerName: customerName, Code: code})
	if err != nil {
		n.log.WithError(err).Warn("render verification notification")
		return err
	}

	return n.enqueue(ctx, recipient, "Confirm your email address", body.String(),
		notification.RelatedAccount, nil)
}

func (n *EmailNotifier) enqueue(
	ctx context.Context,
	recipient, subject, body string,
	relatedKind notification.RelatedKind,
	relatedID *kernel.UUID,
) error {
	aggregate, err := notification.NewNotification(
		kernel.NewUUID(),
		notification.ChannelEmail,
		recipient,
		subject,
		body,
		relatedKind,
		relatedID,
	)
	if err != nil {
		n.log.WithError(err).Warn("build notification")
		return err
	}

	uow := n.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		n.log.WithError(err).Warn("begin notification transaction")
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Add(ctx, aggregate); err != nil {
		n.log.WithError(err).Warn("enqueue notification")
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		n.log.WithError(err).Warn("commit notification")
		return err
	}

	n.log.WithFields(logrus.Fields{
		"notification_id": aggregate.ID().String(),
		"recipient":       recipient,
		"subject":         subject,
	}).Info("notification enqueued")
	return nil
}
