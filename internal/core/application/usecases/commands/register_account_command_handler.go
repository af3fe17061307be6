package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"brokerage/internal/core/domain/model/account"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/auth"
)

// RegisterAccountCommandHandler handles self-service registration: it hashes
// the password, persists the account, stores a short-lived verification code
// and emails it to the new customer after commit.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	codes      ports.VerificationCodes
	notifier   ports.Notifier
}

// NewRegisterAccountCommandHandler creates a handler for registration.
func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	codes ports.VerificationCodes,
	notifier ports.Notifier,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
	}
}

// Handle processes the registration command.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := account.NewAccount(cmd.AccountID(), cmd.Email(), cmd.Username(),
		cmd.Phone(), cmd.FirstName(), cmd.LastName(), hash)
	if err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}
	if err = h.codes.Store(ctx, aggregate.ID(), code); err != nil {
		return err
	}

	_ = h.notifier.NotifyVerificationCode(ctx, aggregate.Email(), aggregate.DisplayName(), code)
	return nil
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
