package commands

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement. The order starts in
// pending status; a confirmation notification is enqueued after commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanActOn(cmd.CustomerID()) {
		return errs.NewForbiddenError("create order for another customer")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.ProductName(),
		cmd.Quantity(), cmd.UnitPrice(), cmd.DeliveryAddress())
	if err != nil {
		return err
	}
	aggregate.SetProductDescription(cmd.ProductDescription())
	if err = aggregate.UpdateDeliveryDetails(cmd.DeliveryAddress(),
		cmd.DeliveryPhone(), cmd.DeliveryNotes()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	owner, err := uow.AccountRepository().Get(ctx, cmd.CustomerID())
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
		Note:         "Order placed",
	})
	return nil
}
