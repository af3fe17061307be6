package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrAddTicketMessageCommandIsNotConstructed = errors.New(
	"AddTicketMessageCommand must be created via NewAddTicketMessageCommand constructor",
)

// AddTicketMessageCommand represents a request to post a message on a
// ticket's conversation thread.
type AddTicketMessageCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	actor    kernel.Actor
	body     string

	guard guard.ConstructorGuard
}

// NewAddTicketMessageCommand creates a command to post a ticket message.
func NewAddTicketMessageCommand(ticketID kernel.UUID, actor kernel.Actor, body string) (AddTicketMessageCommand, error) {
	cmd := AddTicketMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setActor(actor),
		cmd.setBody(body),
	); err != nil {
		return AddTicketMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTicketMessageCommand) Validate() error {
	return c.guard.Validate(ErrAddTicketMessageCommandIsNotConstructed)
}

func (c AddTicketMessageCommand) TicketID() kernel.UUID { return c.ticketID }
func (c AddTicketMessageCommand) Actor() kernel.Actor   { return c.actor }
func (c AddTicketMessageCommand) Body() string          { return c.body }

func (c *AddTicketMessageCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *AddTicketMessageCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddTicketMessageCommand) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("message body")
	}
	c.body = body
	return nil
}
