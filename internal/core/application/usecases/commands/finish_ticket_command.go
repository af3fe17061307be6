package commands

import (
	"errors"
	"fmt"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrFinishTicketCommandIsNotConstructed = errors.New(
	"FinishTicketCommand must be created via NewFinishTicketCommand constructor",
)

// FinishTicketCommand represents a request to end a ticket: resolved when
// the question was answered, closed when it was not. The owner and staff may
// finish a ticket.
type FinishTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	actor    kernel.Actor
	outcome  ticket.Status
	note     string

	guard guard.ConstructorGuard
}

// NewFinishTicketCommand creates a command to resolve or close a ticket.
// The outcome must be one of the two terminal statuses.
func NewFinishTicketCommand(
	ticketID kernel.UUID,
	actor kernel.Actor,
	outcome ticket.Status,
	note string,
) (FinishTicketCommand, error) {
	cmd := FinishTicketCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setActor(actor),
		cmd.setOutcome(outcome),
	); err != nil {
		return FinishTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishTicketCommand) Validate() error {
	return c.guard.Validate(ErrFinishTicketCommandIsNotConstructed)
}

func (c FinishTicketCommand) TicketID() kernel.UUID  { return c.ticketID }
func (c FinishTicketCommand) Actor() kernel.Actor    { return c.actor }
func (c FinishTicketCommand) Outcome() ticket.Status { return c.outcome }
func (c FinishTicketCommand) Note() string           { return c.note }

func (c *FinishTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *FinishTicketCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *FinishTicketCommand) setOutcome(outcome ticket.Status) error {
	if outcome != ticket.StatusResolved && outcome != ticket.StatusClosed {
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome", fmt.Errorf("%q is not a terminal ticket status", outcome))
	}
	c.outcome = outcome
	return nil
}
