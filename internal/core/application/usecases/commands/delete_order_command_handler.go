package commands

import (
	"context"
	"fmt"

	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles order removal.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Owners may only delete orders that
// are still pending; staff may delete regardless of status.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	if !cmd.Actor().IsStaff() && aggregate.Status() != order.StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("a %s order can no longer be deleted", aggregate.Status()))
	}

	if err = repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
