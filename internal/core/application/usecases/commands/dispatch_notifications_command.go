package commands

import (
	"errors"

	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

const maxDispatchBatchSize = 1000

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand represents a request to drain up to limit
// pending outbox rows through the transport.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command to dispatch pending notifications.
func NewDispatchNotificationsCommand(limit int) (DispatchNotificationsCommand, error) {
	cmd := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLimit(limit); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

func (c DispatchNotificationsCommand) Limit() int { return c.limit }

func (c *DispatchNotificationsCommand) setLimit(limit int) error {
	if limit < 1 || limit > maxDispatchBatchSize {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxDispatchBatchSize)
	}
	c.limit = limit
	return nil
}
