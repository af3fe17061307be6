package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"
)

var ErrCompleteDeclarationCommandIsNotConstructed = errors.New(
	"CompleteDeclarationCommand must be created via NewCompleteDeclarationCommand constructor",
)

// CompleteDeclarationCommand represents a staff request to close out a
// reviewed declaration.
type CompleteDeclarationCommand struct { //nolint:recvcheck //using for validation
	declarationID kernel.UUID
	actor         kernel.Actor

	guard guard.ConstructorGuard
}

// NewCompleteDeclarationCommand creates a command to complete a declaration.
func NewCompleteDeclarationCommand(declarationID kernel.UUID, actor kernel.Actor) (CompleteDeclarationCommand, error) {
	cmd := CompleteDeclarationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeclarationID(declarationID),
		cmd.setActor(actor),
	); err != nil {
		return CompleteDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeclarationCommandIsNotConstructed)
}

func (c CompleteDeclarationCommand) DeclarationID() kernel.UUID { return c.declarationID }
func (c CompleteDeclarationCommand) Actor() kernel.Actor        { return c.actor }

func (c *CompleteDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}
	c.declarationID = declarationID
	return nil
}

func (c *CompleteDeclarationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
