package commands

import (
	"context"

	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/pkg/errs"
)

// OpenTicketCommandHandler handles ticket creation. The repository assigns
// the sequenced business number two-phase inside the same transaction.
type OpenTicketCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewOpenTicketCommandHandler creates a handler for ticket creation.
func NewOpenTicketCommandHandler(uowFactory TicketUoWFactory) OpenTicketCommandHandler {
	return OpenTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open-ticket command.
func (h *OpenTicketCommandHandler) Handle(ctx context.Context, cmd OpenTicketCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanActOn(cmd.CustomerID()) {
		return errs.NewForbiddenError("open ticket for another customer")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := ticket.NewTicket(cmd.TicketID(), cmd.CustomerID(), cmd.Subject(),
		cmd.Description(), cmd.TicketType(), cmd.Priority(), cmd.OrderID(), cmd.DeclarationID())
	if err != nil {
		return err
	}

	if err = uow.TicketRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
