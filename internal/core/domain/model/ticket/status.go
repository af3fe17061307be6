package ticket

import (
	"fmt"

	"brokerage/internal/pkg/errs"
)

// Status represents the lifecycle state of a support ticket. Staff may move a
// ticket freely between the non-terminal states; resolved and closed are
// terminal.
type Status string

const (
	StatusOpen               Status = "open"
	StatusInProgress         Status = "in_progress"
	StatusWaitingForCustomer Status = "waiting_for_customer"
	StatusResolved           Status = "resolved"
	StatusClosed             Status = "closed"
)

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusOpen:               {StatusInProgress, StatusWaitingForCustomer, StatusResolved, StatusClosed},
		StatusInProgress:         {StatusOpen, StatusWaitingForCustomer, StatusResolved, StatusClosed},
		StatusWaitingForCustomer: {StatusOpen, StatusInProgress, StatusResolved, StatusClosed},
		StatusResolved:           {},
		StatusClosed:             {},
	}
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid ticket status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	next, ok := statusTransitions()[s]
	return ok && len(next) == 0
}

// TransitionTo validates the move from the current status to next and returns
// the new status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if s.IsTerminal() {
		return "", errs.NewAlreadyTerminalError(s.String())
	}
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return "", errs.NewInvalidTransitionError(s.String(), next.String())
}

// Priority is the urgency label of a ticket. It carries no workflow rules.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Validate checks that the priority is one of the known values.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"priority", fmt.Errorf("%q is not a valid ticket priority", string(p)))
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// Type is the category a ticket is filed under.
type Type string

const (
	TypeGeneral     Type = "general"
	TypeOrder       Type = "order"
	TypeDeclaration Type = "declaration"
	TypeBilling     Type = "billing"
	TypeTechnical   Type = "technical"
)

// Validate checks that the type is one of the known categories.
func (t Type) Validate() error {
	switch t {
	case TypeGeneral, TypeOrder, TypeDeclaration, TypeBilling, TypeTechnical:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"ticket type", fmt.Errorf("%q is not a valid ticket type", string(t)))
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
