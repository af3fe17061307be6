package commands

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles staff-driven status transitions.
// The order is re-read under a row lock, the transition guards run against
// current state, and exactly one history record per changed machine is
// committed with the order. A notification is enqueued after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(cmd.Actor(), *cmd.Status(), cmd.Note()); err != nil {
			return err
		}
	}
	if cmd.DeliveryStatus() != nil {
		if err = aggregate.ChangeDeliveryStatus(cmd.Actor(), *cmd.DeliveryStatus(), cmd.Note()); err != nil {
			return err
		}
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

	newStatus := aggregate.Status().String()
	if cmd.Status() == nil {
		newStatus = aggregate.DeliveryStatus().String()
	}
	_ = h.notifier.NotifyStatusChange(ctx, ports.StatusChangeNotice{
		Recipient:    owner.Email(),
		CustomerName: owner.DisplayName(),
		EntityKind:   notification.RelatedOrder,
		EntityID:     aggregate.ID(),
		EntityNumber: aggregate.Number().String(),
		NewStatus:    newStatus,
		Note:         cmd.Note(),
	})
	return nil
}
