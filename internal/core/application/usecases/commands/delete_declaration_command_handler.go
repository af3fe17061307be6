package commands

import (
	"context"
	"fmt"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/pkg/errs"
)

// DeleteDeclarationCommandHandler handles declaration removal.
type DeleteDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
}

// NewDeleteDeclarationCommandHandler creates a handler for declaration removal.
func NewDeleteDeclarationCommandHandler(uowFactory DeclarationUoWFactory) DeleteDeclarationCommandHandler {
	return DeleteDeclarationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Owners may only delete drafts; staff
// may delete regardless of status.
func (h *DeleteDeclarationCommandHandler) Handle(ctx context.Context, cmd DeleteDeclarationCommand) error {
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
	if !cmd.Actor().IsStaff() && aggregate.Status() != declaration.StatusDraft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("a %s declaration can no longer be deleted", aggregate.Status()))
	}

	if err = repo.Delete(ctx, cmd.DeclarationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
