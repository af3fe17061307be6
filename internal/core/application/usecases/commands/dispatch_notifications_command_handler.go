package commands

import (
	"context"

	"brokerage/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains the outbox: pending rows are
// handed to the transport and marked sent or failed. A transport error fails
// only that row; the batch keeps going.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	transport  ports.Transport
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox dispatch.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	transport ports.Transport,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		transport:  transport,
	}
}

// Handle processes the dispatch command.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	pending, err := repo.GetPending(ctx, cmd.Limit())
	if err != nil {
		return err
	}

	for _, n := range pending {
		if sendErr := h.transport.Send(ctx, n); sendErr != nil {
			if err = n.MarkFailed(sendErr); err != nil {
				return err
			}
		} else {
			if err = n.MarkSent(); err != nil {
				return err
			}
		}

		if err = repo.Update(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
