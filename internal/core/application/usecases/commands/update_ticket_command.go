package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/pkg/guard"
)

var ErrUpdateTicketCommandIsNotConstructed = errors.New(
	"UpdateTicketCommand must be created via NewUpdateTicketCommand constructor",
)

// UpdateTicketCommand represents a staff update of a ticket: moving it
// between non-terminal states, assigning it, or relabeling its priority.
// Nil fields are left untouched.
type UpdateTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	actor    kernel.Actor

	status     *ticket.Status
	assignedTo *kernel.UUID
	priority   *ticket.Priority

	guard guard.ConstructorGuard
}

// NewUpdateTicketCommand creates a command to update a ticket.
func NewUpdateTicketCommand(
	ticketID kernel.UUID,
	actor kernel.Actor,
	status *ticket.Status,
	assignedTo *kernel.UUID,
	priority *ticket.Priority,
) (UpdateTicketCommand, error) {
	cmd := UpdateTicketCommand{
		status:     status,
		assignedTo: assignedTo,
		priority:   priority,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTicketCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTicketCommandIsNotConstructed)
}

func (c UpdateTicketCommand) TicketID() kernel.UUID       { return c.ticketID }
func (c UpdateTicketCommand) Actor() kernel.Actor         { return c.actor }
func (c UpdateTicketCommand) Status() *ticket.Status      { return c.status }
func (c UpdateTicketCommand) AssignedTo() *kernel.UUID    { return c.assignedTo }
func (c UpdateTicketCommand) Priority() *ticket.Priority  { return c.priority }

func (c *UpdateTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *UpdateTicketCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
