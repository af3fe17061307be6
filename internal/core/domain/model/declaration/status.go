package declaration

import (
	"fmt"

	"brokerage/internal/pkg/errs"
)

// Status represents the review lifecycle of a customs declaration.
//
// State transitions:
//
//	draft ──> submitted ──┬──> under_review ──┬──> approved ──┬──> completed
//	                      │         │         └──> rejected ──┘
//	                      ├──> approved
//	                      └──> rejected
//
// completed is terminal. A rejected declaration may still be completed, which
// closes it out administratively.
type Status string

const (
	// StatusDraft is the initial status while the customer fills in details.
	StatusDraft Status = "draft"

	// StatusSubmitted indicates the customer handed the declaration to staff.
	StatusSubmitted Status = "submitted"

	// StatusUnderReview indicates a broker picked the declaration up.
	StatusUnderReview Status = "under_review"

	// StatusApproved indicates the review passed.
	StatusApproved Status = "approved"

	// StatusRejected indicates the review failed. A rejection reason is
	// always recorded alongside.
	StatusRejected Status = "rejected"

	// StatusCompleted indicates customs processing finished. Terminal.
	StatusCompleted Status = "completed"
)

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:       {StatusSubmitted},
		StatusSubmitted:   {StatusUnderReview, StatusApproved, StatusRejected},
		StatusUnderReview: {StatusApproved, StatusRejected},
		StatusApproved:    {StatusCompleted},
		StatusRejected:    {StatusCompleted},
		StatusCompleted:   {},
	}
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid declaration status", string(s)))
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
