package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrCreateDeclarationCommandIsNotConstructed = errors.New(
	"CreateDeclarationCommand must be created via NewCreateDeclarationCommand constructor",
)

// CreateDeclarationCommand represents a request to create a draft customs
// declaration. Field-level rules live in the aggregate; the command only
// checks identity and actor validity.
type CreateDeclarationCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	params declaration.NewDeclarationParams

	guard guard.ConstructorGuard
}

// NewCreateDeclarationCommand creates a command to create a draft declaration.
func NewCreateDeclarationCommand(
	actor kernel.Actor,
	params declaration.NewDeclarationParams,
) (CreateDeclarationCommand, error) {
	cmd := CreateDeclarationCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.validateIdentity(params),
	); err != nil {
		return CreateDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeclarationCommandIsNotConstructed)
}

func (c CreateDeclarationCommand) Actor() kernel.Actor { return c.actor }
func (c CreateDeclarationCommand) Params() declaration.NewDeclarationParams {
	return c.params
}

func (c *CreateDeclarationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateDeclarationCommand) validateIdentity(params declaration.NewDeclarationParams) error {
	if err := params.ID.Validate(); err != nil {
		return err
	}
	if err := params.CustomerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	return nil
}
