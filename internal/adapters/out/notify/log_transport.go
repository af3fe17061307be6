package notify

import (
	"context"

	"brokerage/internal/core/domain/model/notification"

	"github.com/sirupsen/logrus"
)

// LogTransport implements ports.Transport by writing the message to the log
// instead of a real SMTP or SMS gateway. It stands in for the gateway in
// development and tests.
type LogTransport struct {
	log *logrus.Logger
}

// NewLogTransport creates a transport that logs instead of sending.
func NewLogTransport(log *logrus.Logger) *LogTransport {
	return &LogTransport{log: log}
}

// Send logs the notification and reports success.
func (t *LogTransport) Send(_ context.Context, n *notification.Notification) error {
	t.log.WithFields(logrus.Fields{
		"notification_id": n.ID().String(),
		"channel":         n.Channel().String(),
		"recipient":       n.Recipient(),
		"subject":         n.Subject(),
	}).Info("notification dispatched")
	return nil
}
