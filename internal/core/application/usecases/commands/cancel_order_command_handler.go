package commands

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation. The order is
// re-read under a row lock so the transition guard runs against current
// state; a cancellation notification is enqueued after commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. Non-staff callers addressing a
// foreign order get a not-found error so existence is not leaked.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanActOn(aggregate.CustomerID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = aggregate.Cancel(cmd.Actor(), cmd.Note()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	owner, err := uow.AccountRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyStatusChange(ctx, ports.StatusChangeNotice{
		Recipient:    owner.Email(),
		CustomerName: owner.DisplayName(),
		EntityKind:   notification.RelatedOrder,
		EntityID:     aggregate.ID(),
		EntityNumber: aggregate.Number().String(),
		NewStatus:    aggregate.Status().String(),
		Note:         cmd.Note(),
	})
	return nil
}
