package commands

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// FinishTicketCommandHandler handles resolving and closing tickets. The
// transition stamps its timestamp once, appends a system message, and a
// notification is enqueued after commit.
type FinishTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	notifier   ports.Notifier
}

// NewFinishTicketCommandHandler creates a handler for finishing tickets.
func NewFinishTicketCommandHandler(uowFactory TicketUoWFactory, notifier ports.Notifier) FinishTicketCommandHandler {
	return FinishTicketCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the finish command.
func (h *FinishTicketCommandHandler) Handle(ctx context.Context, cmd FinishTicketCommand) error {
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

	if cmd.Outcome() == ticket.StatusResolved {
		err = aggregate.Resolve(cmd.Actor(), cmd.Note())
	} else {
		err = aggregate.Close(cmd.Actor(), cmd.Note())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	owner, err := uow.AccountRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	number := ""
	if aggregate.Number() != nil {
		number = aggregate.Number().String()
	}
	_ = h.notifier.NotifyStatusChange(ctx, ports.StatusChangeNotice{
		Recipient:    owner.Email(),
		CustomerName: owner.DisplayName(),
		EntityKind:   notification.RelatedTicket,
		EntityID:     aggregate.ID(),
		EntityNumber: number,
		NewStatus:    aggregate.Status().String(),
		Note:         cmd.Note(),
	})
	return nil
}
