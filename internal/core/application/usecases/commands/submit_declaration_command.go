package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"
)

var ErrSubmitDeclarationCommandIsNotConstructed = errors.New(
	"SubmitDeclarationCommand must be created via NewSubmitDeclarationCommand constructor",
)

// SubmitDeclarationCommand represents a request to hand a draft declaration
// to staff for review.
type SubmitDeclarationCommand struct { //nolint:recvcheck //using for validation
	declarationID kernel.UUID
	actor         kernel.Actor

	guard guard.ConstructorGuard
}

// NewSubmitDeclarationCommand creates a command to submit a declaration.
func NewSubmitDeclarationCommand(declarationID kernel.UUID, actor kernel.Actor) (SubmitDeclarationCommand, error) {
	cmd := SubmitDeclarationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeclarationID(declarationID),
		cmd.setActor(actor),
	); err != nil {
		return SubmitDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeclarationCommandIsNotConstructed)
}

func (c SubmitDeclarationCommand) DeclarationID() kernel.UUID { return c.declarationID }
func (c SubmitDeclarationCommand) Actor() kernel.Actor        { return c.actor }

func (c *SubmitDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}
	c.declarationID = declarationID
	return nil
}

func (c *SubmitDeclarationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
