package order

import (
	"fmt"

	"brokerage/internal/pkg/errs"
)

// DeliveryStatus tracks the physical movement of the parcel independently of
// the order's processing status.
//
// State transitions:
//
//	pending ──> in_transit ──> out_for_delivery ──> delivered
//	               ^  │               │
//	               │  └──> failed <───┘
//	               └───────┘ (redelivery)
//
// delivered is terminal; failed allows a retry back into in_transit.
type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "pending"
	DeliveryInTransit      DeliveryStatus = "in_transit"
	DeliveryOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
	DeliveryFailed         DeliveryStatus = "failed"
)

func deliveryStatusTransitions() map[DeliveryStatus][]DeliveryStatus {
	return map[DeliveryStatus][]DeliveryStatus{
		DeliveryPending:        {DeliveryInTransit},
		DeliveryInTransit:      {DeliveryOutForDelivery, DeliveryFailed},
		DeliveryOutForDelivery: {DeliveryDelivered, DeliveryFailed},
		DeliveryDelivered:      {},
		DeliveryFailed:         {DeliveryInTransit},
	}
}

// Validate checks that the delivery status is one of the known values.
func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status", fmt.Errorf("%q is not a valid delivery status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s DeliveryStatus) IsTerminal() bool {
	next, ok := deliveryStatusTransitions()[s]
	return ok && len(next) == 0
}

// TransitionTo validates the move from the current delivery status to next
// and returns the new status.
func (s DeliveryStatus) TransitionTo(next DeliveryStatus) (DeliveryStatus, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if s.IsTerminal() {
		return "", errs.NewAlreadyTerminalError(s.String())
	}
	for _, allowed := range deliveryStatusTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return "", errs.NewInvalidTransitionError(s.String(), next.String())
}
