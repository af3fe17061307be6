package notification_test

import (
	"errors"
	"testing"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingNotification(t *testing.T) *notification.Notification {
	t.Helper()
	relatedID := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(),
		notification.ChannelEmail, "jane@example.com",
		"Your order shipped", "<p>Order ORD-20250301-AB12CD34 is on its way.</p>",
		notification.RelatedOrder, &relatedID)
	require.NoError(t, err)
	return n
}

func TestNewNotification(t *testing.T) {
	t.Run("should enqueue pending", func(t *testing.T) {
		n := pendingNotification(t)

		assert.Equal(t, notification.StatusPending, n.Status())
		assert.Nil(t, n.SentAt())
		assert.Empty(t, n.ErrorMessage())
		require.NoError(t, n.Validate())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(),
			notification.Channel("pigeon"), "jane@example.com", "s", "b",
			notification.RelatedOrder, nil)
		assert.Error(t, err, "unknown channel")

		_, err = notification.NewNotification(kernel.NewUUID(),
			notification.ChannelEmail, "", "s", "b",
			notification.RelatedOrder, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired, "empty recipient")

		_, err = notification.NewNotification(kernel.NewUUID(),
			notification.ChannelEmail, "jane@example.com", "s", "",
			notification.RelatedOrder, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired, "empty body")
	})
}

func TestNotification_MarkSent(t *testing.T) {
	n := pendingNotification(t)

	require.NoError(t, n.MarkSent())
	assert.Equal(t, notification.StatusSent, n.Status())
	require.NotNil(t, n.SentAt())

	err := n.MarkSent()
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestNotification_MarkFailed(t *testing.T) {
	n := pendingNotification(t)

	require.NoError(t, n.MarkFailed(errors.New("smtp: connection refused")))
	assert.Equal(t, notification.StatusFailed, n.Status())
	assert.Equal(t, "smtp: connection refused", n.ErrorMessage())
	assert.Nil(t, n.SentAt())

	err := n.MarkSent()
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}
