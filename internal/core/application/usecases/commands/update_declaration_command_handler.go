package commands

import (
	"context"

	"brokerage/internal/pkg/errs"
)

// UpdateDeclarationCommandHandler handles partial declaration updates.
type UpdateDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
}

// NewUpdateDeclarationCommandHandler creates a handler for declaration updates.
func NewUpdateDeclarationCommandHandler(uowFactory DeclarationUoWFactory) UpdateDeclarationCommandHandler {
	return UpdateDeclarationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Detail updates never touch the status
// machine and append no history.
func (h *UpdateDeclarationCommandHandler) Handle(ctx context.Context, cmd UpdateDeclarationCommand) error {
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

	if cmd.Details() != nil {
		if err = aggregate.UpdateDetails(*cmd.Details()); err != nil {
			return err
		}
	}
	if cmd.Customs() != nil {
		customs := *cmd.Customs()
		if err = aggregate.SetCustoms(cmd.Actor(), customs.Code, customs.Value, customs.Duty); err != nil {
			return err
		}
	}
	if cmd.AdminNotes() != nil {
		if err = aggregate.SetAdminNotes(cmd.Actor(), *cmd.AdminNotes()); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
