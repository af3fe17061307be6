package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateDeclarationCommandIsNotConstructed = errors.New(
	"UpdateDeclarationCommand must be created via NewUpdateDeclarationCommand constructor",
)

// CustomsFields carries the staff-only customs assessment of a declaration.
type CustomsFields struct {
	Code  string
	Value decimal.Decimal
	Duty  decimal.Decimal
}

// UpdateDeclarationCommand represents a partial update: owners replace the
// draft details, staff set the customs assessment and admin notes. Nil
// groups are left untouched.
type UpdateDeclarationCommand struct { //nolint:recvcheck //using for validation
	declarationID kernel.UUID
	actor         kernel.Actor

	details    *declaration.NewDeclarationParams
	customs    *CustomsFields
	adminNotes *string

	guard guard.ConstructorGuard
}

// NewUpdateDeclarationCommand creates a command to update a declaration.
func NewUpdateDeclarationCommand(
	declarationID kernel.UUID,
	actor kernel.Actor,
	details *declaration.NewDeclarationParams,
	customs *CustomsFields,
	adminNotes *string,
) (UpdateDeclarationCommand, error) {
	cmd := UpdateDeclarationCommand{
		details:    details,
		customs:    customs,
		adminNotes: adminNotes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeclarationID(declarationID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeclarationCommandIsNotConstructed)
}

func (c UpdateDeclarationCommand) DeclarationID() kernel.UUID { return c.declarationID }
func (c UpdateDeclarationCommand) Actor() kernel.Actor        { return c.actor }
func (c UpdateDeclarationCommand) Details() *declaration.NewDeclarationParams {
	return c.details
}
func (c UpdateDeclarationCommand) Customs() *CustomsFields { return c.customs }
func (c UpdateDeclarationCommand) AdminNotes() *string     { return c.adminNotes }

func (c *UpdateDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}
	c.declarationID = declarationID
	return nil
}

func (c *UpdateDeclarationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
