package commands

import (
	"errors"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of order details. Owners may
// change delivery details while the order is pending; tracking, estimated
// delivery and admin notes are staff-only. Nil fields are left untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	deliveryAddress *string
	deliveryPhone   *string
	deliveryNotes   *string

	trackingNumber    *string
	trackingURL       *string
	estimatedDelivery *time.Time
	adminNotes        *string

	guard guard.ConstructorGuard
}

// UpdateOrderFields carries the optional fields of an order update.
type UpdateOrderFields struct {
	DeliveryAddress   *string
	DeliveryPhone     *string
	DeliveryNotes     *string
	TrackingNumber    *string
	TrackingURL       *string
	EstimatedDelivery *time.Time
	AdminNotes        *string
}

// NewUpdateOrderCommand creates a command to update order details.
func NewUpdateOrderCommand(orderID kernel.UUID, actor kernel.Actor, fields UpdateOrderFields) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		deliveryAddress:   fields.DeliveryAddress,
		deliveryPhone:     fields.DeliveryPhone,
		deliveryNotes:     fields.DeliveryNotes,
		trackingNumber:    fields.TrackingNumber,
		trackingURL:       fields.TrackingURL,
		estimatedDelivery: fields.EstimatedDelivery,
		adminNotes:        fields.AdminNotes,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID          { return c.orderID }
func (c UpdateOrderCommand) Actor() kernel.Actor           { return c.actor }
func (c UpdateOrderCommand) DeliveryAddress() *string      { return c.deliveryAddress }
func (c UpdateOrderCommand) DeliveryPhone() *string        { return c.deliveryPhone }
func (c UpdateOrderCommand) DeliveryNotes() *string        { return c.deliveryNotes }
func (c UpdateOrderCommand) TrackingNumber() *string       { return c.trackingNumber }
func (c UpdateOrderCommand) TrackingURL() *string          { return c.trackingURL }
func (c UpdateOrderCommand) EstimatedDelivery() *time.Time { return c.estimatedDelivery }
func (c UpdateOrderCommand) AdminNotes() *string           { return c.adminNotes }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
