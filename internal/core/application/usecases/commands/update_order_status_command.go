package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a staff request to move an order along
// the processing machine, the delivery machine, or both. At least one of the
// two targets must be set.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actor          kernel.Actor
	status         *order.Status
	deliveryStatus *order.DeliveryStatus
	note           string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change order statuses.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	status *order.Status,
	deliveryStatus *order.DeliveryStatus,
	note string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTargets(status, deliveryStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID                  { return c.orderID }
func (c UpdateOrderStatusCommand) Actor() kernel.Actor                   { return c.actor }
func (c UpdateOrderStatusCommand) Status() *order.Status                 { return c.status }
func (c UpdateOrderStatusCommand) DeliveryStatus() *order.DeliveryStatus { return c.deliveryStatus }
func (c UpdateOrderStatusCommand) Note() string                          { return c.note }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setTargets(status *order.Status, deliveryStatus *order.DeliveryStatus) error {
	if status == nil && deliveryStatus == nil {
		return errs.NewValueIsRequiredError("status or delivery status")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if deliveryStatus != nil {
		if err := deliveryStatus.Validate(); err != nil {
			return err
		}
	}
	c.status = status
	c.deliveryStatus = deliveryStatus
	return nil
}
