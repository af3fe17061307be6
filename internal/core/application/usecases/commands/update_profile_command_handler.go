package commands

import (
	"context"
)

// UpdateProfileCommandHandler handles profile updates for the calling account.
type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	repo := uow.AccountRepository()
	aggregate, err := repo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	fields := cmd.Fields()
	if err = aggregate.UpdateProfile(fields.Phone, fields.FirstName, fields.LastName,
		fields.Country, fields.City, fields.Address); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
