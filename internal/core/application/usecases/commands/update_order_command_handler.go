package commands

import (
	"context"

	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial updates of order details.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order detail updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Detail updates do not touch either
// status machine and append no history.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if err = h.apply(aggregate, cmd); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateOrderCommandHandler) apply(aggregate *order.Order, cmd UpdateOrderCommand) error {
	if cmd.DeliveryAddress() != nil || cmd.DeliveryPhone() != nil || cmd.DeliveryNotes() != nil {
		address := aggregate.DeliveryAddress()
		phone := aggregate.DeliveryPhone()
		notes := aggregate.DeliveryNotes()
		if cmd.DeliveryAddress() != nil {
			address = *cmd.DeliveryAddress()
		}
		if cmd.DeliveryPhone() != nil {
			phone = *cmd.DeliveryPhone()
		}
		if cmd.DeliveryNotes() != nil {
			notes = *cmd.DeliveryNotes()
		}
		if err := aggregate.UpdateDeliveryDetails(address, phone, notes); err != nil {
			return err
		}
	}

	if cmd.TrackingNumber() != nil {
		url := aggregate.TrackingURL()
		if cmd.TrackingURL() != nil {
			url = *cmd.TrackingURL()
		}
		if err := aggregate.SetTracking(cmd.Actor(), *cmd.TrackingNumber(), url); err != nil {
			return err
		}
	}

	if cmd.EstimatedDelivery() != nil {
		if err := aggregate.SetEstimatedDelivery(cmd.Actor(), *cmd.EstimatedDelivery()); err != nil {
			return err
		}
	}

	if cmd.AdminNotes() != nil {
		if err := aggregate.SetAdminNotes(cmd.Actor(), *cmd.AdminNotes()); err != nil {
			return err
		}
	}

	return nil
}
