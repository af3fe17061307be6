package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

const minPasswordLength = 8

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand represents a self-service registration request.
// The password travels in the clear only inside this command; the handler
// hashes it before anything is persisted.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	username  string
	phone     string
	firstName string
	lastName  string
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register an account.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	email string,
	username string,
	phone string,
	firstName string,
	lastName string,
	password string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		phone:     phone,
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setEmail(email),
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) AccountID() kernel.UUID { return c.accountID }
func (c RegisterAccountCommand) Email() string          { return c.email }
func (c RegisterAccountCommand) Username() string       { return c.username }
func (c RegisterAccountCommand) Phone() string          { return c.phone }
func (c RegisterAccountCommand) FirstName() string      { return c.firstName }
func (c RegisterAccountCommand) LastName() string       { return c.lastName }
func (c RegisterAccountCommand) Password() string       { return c.password }

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	c.password = password
	return nil
}
