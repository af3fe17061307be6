package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// ProfileFields carries the editable profile fields of an account.
type ProfileFields struct {
	Phone     string
	FirstName string
	LastName  string
	Country   string
	City      string
	Address   string
}

// UpdateProfileCommand represents a request to update the caller's profile.
// Email, username and the client code are immutable.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	fields ProfileFields

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a profile.
func NewUpdateProfileCommand(actor kernel.Actor, fields ProfileFields) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Actor() kernel.Actor   { return c.actor }
func (c UpdateProfileCommand) Fields() ProfileFields { return c.fields }

func (c *UpdateProfileCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
