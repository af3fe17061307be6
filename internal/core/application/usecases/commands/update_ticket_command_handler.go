package commands

import (
	"context"

	"brokerage/internal/pkg/errs"
)

// UpdateTicketCommandHandler handles staff ticket updates.
type UpdateTicketCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewUpdateTicketCommandHandler creates a handler for ticket updates.
func NewUpdateTicketCommandHandler(uowFactory TicketUoWFactory) UpdateTicketCommandHandler {
	return UpdateTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ticket update command.
func (h *UpdateTicketCommandHandler) Handle(ctx context.Context, cmd UpdateTicketCommand) error {
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

	repo := uow.TicketRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanActOn(aggregate.CustomerID()) {
		return errs.NewObjectNotFoundError("ticket", cmd.TicketID())
	}

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(cmd.Actor(), *cmd.Status()); err != nil {
			return err
		}
	}
	if cmd.AssignedTo() != nil {
		if err = aggregate.AssignTo(cmd.Actor(), *cmd.AssignedTo()); err != nil {
			return err
		}
	}
	if cmd.Priority() != nil {
		if err = aggregate.SetPriority(cmd.Actor(), *cmd.Priority()); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
