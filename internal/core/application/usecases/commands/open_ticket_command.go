package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrOpenTicketCommandIsNotConstructed = errors.New(
	"OpenTicketCommand must be created via NewOpenTicketCommand constructor",
)

// OpenTicketCommand represents a request to open a support ticket, optionally
// referencing the order or declaration it is about.
type OpenTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID   kernel.UUID
	actor      kernel.Actor
	customerID kernel.UUID

	subject     string
	description string
	ticketType  ticket.Type
	priority    ticket.Priority

	orderID       *kernel.UUID
	declarationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenTicketCommand creates a command to open a ticket.
func NewOpenTicketCommand(
	ticketID kernel.UUID,
	actor kernel.Actor,
	customerID kernel.UUID,
	subject string,
	description string,
	ticketType ticket.Type,
	priority ticket.Priority,
	orderID *kernel.UUID,
	declarationID *kernel.UUID,
) (OpenTicketCommand, error) {
	cmd := OpenTicketCommand{
		orderID:       orderID,
		declarationID: declarationID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setActor(actor),
		cmd.setCustomerID(customerID),
		cmd.setSubject(subject),
		cmd.setDescription(description),
		cmd.setType(ticketType),
		cmd.setPriority(priority),
	); err != nil {
		return OpenTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenTicketCommand) Validate() error {
	return c.guard.Validate(ErrOpenTicketCommandIsNotConstructed)
}

func (c OpenTicketCommand) TicketID() kernel.UUID        { return c.ticketID }
func (c OpenTicketCommand) Actor() kernel.Actor          { return c.actor }
func (c OpenTicketCommand) CustomerID() kernel.UUID      { return c.customerID }
func (c OpenTicketCommand) Subject() string              { return c.subject }
func (c OpenTicketCommand) Description() string          { return c.description }
func (c OpenTicketCommand) TicketType() ticket.Type      { return c.ticketType }
func (c OpenTicketCommand) Priority() ticket.Priority    { return c.priority }
func (c OpenTicketCommand) OrderID() *kernel.UUID        { return c.orderID }
func (c OpenTicketCommand) DeclarationID() *kernel.UUID  { return c.declarationID }

func (c *OpenTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *OpenTicketCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *OpenTicketCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = customerID
	return nil
}

func (c *OpenTicketCommand) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	c.subject = subject
	return nil
}

func (c *OpenTicketCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *OpenTicketCommand) setType(ticketType ticket.Type) error {
	if err := ticketType.Validate(); err != nil {
		return err
	}
	c.ticketType = ticketType
	return nil
}

func (c *OpenTicketCommand) setPriority(priority ticket.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
