package commands

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// SubmitDeclarationCommandHandler handles declaration submission. The first
// submission stamps submittedAt; a notification is enqueued after commit.
type SubmitDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
	notifier   ports.Notifier
}

// NewSubmitDeclarationCommandHandler creates a handler for declaration submission.
func NewSubmitDeclarationCommandHandler(
	uowFactory DeclarationUoWFactory,
	notifier ports.Notifier,
) SubmitDeclarationCommandHandler {
	return SubmitDeclarationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the submission command.
func (h *SubmitDeclarationCommandHandler) Handle(ctx context.Context, cmd SubmitDeclarationCommand) error {
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

	if err = aggregate.Submit(cmd.Actor()); err != nil {
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
