package commands

import (
	"context"

	"brokerage/internal/pkg/errs"
)

// AddTicketMessageCommandHandler handles posting to a ticket thread.
type AddTicketMessageCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewAddTicketMessageCommandHandler creates a handler for ticket messages.
func NewAddTicketMessageCommandHandler(uowFactory TicketUoWFactory) AddTicketMessageCommandHandler {
	return AddTicketMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the message command.
func (h *AddTicketMessageCommandHandler) Handle(ctx context.Context, cmd AddTicketMessageCommand) error {
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

	if err = aggregate.AddMessage(cmd.Actor(), cmd.Body()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
