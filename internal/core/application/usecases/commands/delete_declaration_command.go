package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"
)

var ErrDeleteDeclarationCommandIsNotConstructed = errors.New(
	"DeleteDeclarationCommand must be created via NewDeleteDeclarationCommand constructor",
)

// DeleteDeclarationCommand represents a request to remove a declaration.
// Owners may delete their own drafts; staff may delete any declaration.
type DeleteDeclarationCommand struct { //nolint:recvcheck //using for validation
	declarationID kernel.UUID
	actor         kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteDeclarationCommand creates a command to delete a declaration.
func NewDeleteDeclarationCommand(declarationID kernel.UUID, actor kernel.Actor) (DeleteDeclarationCommand, error) {
	cmd := DeleteDeclarationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeclarationID(declarationID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeclarationCommandIsNotConstructed)
}

func (c DeleteDeclarationCommand) DeclarationID() kernel.UUID { return c.declarationID }
func (c DeleteDeclarationCommand) Actor() kernel.Actor        { return c.actor }

func (c *DeleteDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}
	c.declarationID = declarationID
	return nil
}

func (c *DeleteDeclarationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
