package order

import (
	"fmt"

	"brokerage/internal/pkg/errs"
)

// Status represents the processing state of an order.
//
// State transitions:
//
//	pending ──┬──> processing ──┬──> shipped ──┬──> delivered
//	          │                 │              └──> returned
//	          └──> cancelled <──┘
//
// delivered, cancelled and returned are terminal.
type Status string

const (
	// StatusPending is the initial status of a freshly placed order.
	StatusPending Status = "pending"

	// StatusProcessing indicates staff accepted the order and work started.
	StatusProcessing Status = "processing"

	// StatusShipped indicates the parcel left the warehouse.
	StatusShipped Status = "shipped"

	// StatusDelivered indicates the parcel reached the customer. Terminal.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was cancelled before shipping. Terminal.
	StatusCancelled Status = "cancelled"

	// StatusReturned indicates the parcel came back after shipping. Terminal.
	StatusReturned Status = "returned"
)

// statusTransitions maps every valid status to the statuses reachable from it.
// An empty slice marks a terminal status.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusDelivered, StatusReturned},
		StatusDelivered:  {},
		StatusCancelled:  {},
		StatusReturned:   {},
	}
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid order status", string(s)))
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
// the new status. Moves out of a terminal status fail with AlreadyTerminal,
// moves along an edge the machine does not define fail with InvalidTransition.
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
