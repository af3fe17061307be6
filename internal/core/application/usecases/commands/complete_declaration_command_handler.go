package commands

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// CompleteDeclarationCommandHandler handles declaration completion. The
// first completion stamps completedAt; a notification is enqueued after
// commit.
type CompleteDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
	notifier   ports.Notifier
}

// NewCompleteDeclarationCommandHandler creates a handler for completion.
func NewCompleteDeclarationCommandHandler(
	uowFactory DeclarationUoWFactory,
	notifier ports.Notifier,
) CompleteDeclarationCommandHandler {
	return CompleteDeclarationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command. Foreign declarations read as not
// found; the declaration's own customer gets a forbidden error from the
// aggregate's staff check.
func (h *CompleteDeclarationCommandHandler) Handle(ctx context.Context, cmd CompleteDeclarationCommand) error {
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

	repo := uow.DeclarationRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.DeclarationID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanActOn(aggregate.CustomerID()) {
		return errs.NewObjectNotFoundError("declaration", cmd.DeclarationID())
	}

	if err = aggregate.Complete(cmd.Actor()); err != nil {
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

	_ = h.notifier.NotifyStatusChange(ctx, ports.StatusChangeNotice{
		Recipient:    owner.Email(),
		CustomerName: owner.DisplayName(),
		EntityKind:   notification.RelatedDeclaration,
		EntityID:     aggregate.ID(),
		EntityNumber: aggregate.Number().String(),
		NewStatus:    aggregate.Status().String(),
	})
	return nil
}
