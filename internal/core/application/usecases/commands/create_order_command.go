package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order. Customers
// place orders for themselves; staff may place an order on a customer's
// behalf by passing that customer's id.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actor      kernel.Actor
	customerID kernel.UUID

	productName        string
	productDescription string
	quantity           int
	unitPrice          decimal.Decimal

	deliveryAddress string
	deliveryPhone   string
	deliveryNotes   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The total price
// is derived later by the aggregate; it is never part of the command.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	customerID kernel.UUID,
	productName string,
	productDescription string,
	quantity int,
	unitPrice decimal.Decimal,
	deliveryAddress string,
	deliveryPhone string,
	deliveryNotes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		productDescription: productDescription,
		deliveryPhone:      deliveryPhone,
		deliveryNotes:      deliveryNotes,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setCustomerID(customerID),
		cmd.setProductName(productName),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID       { return c.orderID }
func (c CreateOrderCommand) Actor() kernel.Actor        { return c.actor }
func (c CreateOrderCommand) CustomerID() kernel.UUID    { return c.customerID }
func (c CreateOrderCommand) ProductName() string        { return c.productName }
func (c CreateOrderCommand) ProductDescription() string { return c.productDescription }
func (c CreateOrderCommand) Quantity() int              { return c.quantity }
func (c CreateOrderCommand) UnitPrice() decimal.Decimal { return c.unitPrice }
func (c CreateOrderCommand) DeliveryAddress() string    { return c.deliveryAddress }
func (c CreateOrderCommand) DeliveryPhone() string      { return c.deliveryPhone }
func (c CreateOrderCommand) DeliveryNotes() string      { return c.deliveryNotes }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	c.productName = productName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 10000)
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidError("unit price")
	}
	c.unitPrice = unitPrice
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = address
	return nil
}
