package commands

import (
	"context"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/pkg/errs"
)

// CreateDeclarationCommandHandler handles draft declaration creation.
type CreateDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
}

// NewCreateDeclarationCommandHandler creates a handler for declaration creation.
func NewCreateDeclarationCommandHandler(uowFactory DeclarationUoWFactory) CreateDeclarationCommandHandler {
	return CreateDeclarationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the declaration creation command. Drafts are silent: no
// notification until the declaration is submitted.
func (h *CreateDeclarationCommandHandler) Handle(ctx context.Context, cmd CreateDeclarationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanActOn(cmd.Params().CustomerID) {
		return errs.NewForbiddenError("create declaration for another customer")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := declaration.NewDeclaration(cmd.Params())
	if err != nil {
		return err
	}

	if err = uow.DeclarationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
