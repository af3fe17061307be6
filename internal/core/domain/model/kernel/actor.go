package kernel

import "brokerage/internal/pkg/errs"

// Actor is the acting party of an operation: who is doing it and whether
// they carry the staff capability. Authorization inside the domain is a
// capability check on this value object, not a role hierarchy.
type Actor struct {
	id          UUID
	displayName string
	staff       bool
}

// NewActor creates an actor from an account identity. The display name is
// used to template history notes ("Status updated by Jane Doe").
func NewActor(id UUID, displayName string, staff bool) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if displayName == "" {
		return Actor{}, errs.NewValueIsRequiredError("display name")
	}

	return Actor{id: id, displayName: displayName, staff: staff}, nil
}

// ID returns the acting account's identifier.
func (a Actor) ID() UUID {
	return a.id
}

// DisplayName returns the actor's human-readable name.
func (a Actor) DisplayName() string {
	return a.displayName
}

// IsStaff reports whether the actor carries the staff capability.
func (a Actor) IsStaff() bool {
	return a.staff
}

// CanActOn reports whether the actor may touch an entity owned by ownerID.
// Staff can act on anything; owners only on their own entities.
func (a Actor) CanActOn(ownerID UUID) bool {
	return a.staff || a.id.IsEqual(ownerID)
}

// Validate returns an error for the zero-value actor.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("actor must be created via NewActor")
	}
	return nil
}
