package commands

import (
	"errors"
	"regexp"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var verificationCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

var ErrVerifyEmailCommandIsNotConstructed = errors.New(
	"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
)

// VerifyEmailCommand represents a request to confirm an email address with
// the six-digit code sent at registration.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	code      string

	guard guard.ConstructorGuard
}

// NewVerifyEmailCommand creates a command to verify an email address.
func NewVerifyEmailCommand(accountID kernel.UUID, code string) (VerifyEmailCommand, error) {
	cmd := VerifyEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setCode(code),
	); err != nil {
		return VerifyEmailCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

func (c VerifyEmailCommand) AccountID() kernel.UUID { return c.accountID }
func (c VerifyEmailCommand) Code() string           { return c.code }

func (c *VerifyEmailCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *VerifyEmailCommand) setCode(code string) error {
	if !verificationCodePattern.MatchString(code) {
		return errs.NewValueIsInvalidError("verification code")
	}
	c.code = code
	return nil
}
