package commands

import (
	"context"

	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// VerifyEmailCommandHandler handles email verification: the code is checked
// against the short-lived store and consumed on success.
type VerifyEmailCommandHandler struct {
	uowFactory AccountUoWFactory
	codes      ports.VerificationCodes
}

// NewVerifyEmailCommandHandler creates a handler for email verification.
func NewVerifyEmailCommandHandler(uowFactory AccountUoWFactory, codes ports.VerificationCodes) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
	}
}

// Handle processes the verification command.
func (h *VerifyEmailCommandHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ok, err := h.codes.Verify(ctx, cmd.AccountID(), cmd.Code())
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewValueIsInvalidError("verification code")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()
	aggregate, err := repo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	aggregate.MarkEmailVerified()

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
