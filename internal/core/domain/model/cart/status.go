package cart

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order.
// It implements a state machine with defined transitions so that orders
// always follow the delivery workflow:
//
//	NOT_CONFIRMED ──> LOOKING_FOR_A_DELIVERER ──> YOUR_ORDER_RECEIVED ──> IN_TRANSIT ──> DELIVERED
//	                                                       │                   │
//	                                                       └───────────────────┴──> FAILED_DELIVERY
//
// RETURNED exists in the enumeration and on the wire but has no inbound
// transition; no method of this type ever produces it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotConfirmed is the initial status: the order is the user's open cart
	// and can still be mutated, cleared, or invalidated.
	NotConfirmed

	// LookingForDeliverer means the user confirmed the cart and the order is
	// waiting in the claimable pool.
	LookingForDeliverer

	// OrderReceived means a deliverer claimed the order.
	OrderReceived

	// InTransit means the deliverer confirmed pickup and is on the way.
	InTransit

	// Delivered is the successful terminal status.
	Delivered

	// FailedDelivery is the unsuccessful terminal status, reached when the
	// deliverer cancels with a reason.
	FailedDelivery

	// Returned is reserved for returned orders. No transition produces it.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		NotConfirmed:        "NOT_CONFIRMED",
		LookingForDeliverer: "LOOKING_FOR_A_DELIVERER",
		OrderReceived:       "YOUR_ORDER_RECEIVED",
		InTransit:           "IN_TRANSIT",
		Delivered:           "DELIVERED",
		FailedDelivery:      "FAILED_DELIVERY",
		Returned:            "RETURNED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotConfirmed:        "NOT_CONFIRMED",
		LookingForDeliverer: "LOOKING_FOR_A_DELIVERER",
		OrderReceived:       "YOUR_ORDER_RECEIVED",
		InTransit:           "IN_TRANSIT",
		Delivered:           "DELIVERED",
		FailedDelivery:      "FAILED_DELIVERY",
		Returned:            "RETURNED",
	}
}

// StatusFromString parses the symbolic wire name of a status.
// Returns an error for unknown names. Used when rehydrating orders from
// persistence, where statuses are stored by name rather than by ordinal.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("orderStatus",
		fmt.Errorf("%q is not a valid status name", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the symbolic name of the status, e.g. "NOT_CONFIRMED".
// This name is also the wire representation used by the JSON store.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == FailedDelivery || s == Returned
}

// IsInProcess reports whether the order is confirmed but not yet resolved:
// waiting for a deliverer, claimed, or on the road.
func (s Status) IsInProcess() bool {
	return s == LookingForDeliverer || s == OrderReceived || s == InTransit
}

// Confirm transitions the status from NotConfirmed to LookingForDeliverer.
// This is the only way a cart enters the delivery workflow.
func (s Status) Confirm() (Status, error) {
	if s != NotConfirmed {
		return 0, s.transitionError("confirm")
	}
	return LookingForDeliverer, nil
}

// Claim transitions the status from LookingForDeliverer to OrderReceived.
// Performed when a deliverer takes the order from the pool.
func (s Status) Claim() (Status, error) {
	if s != LookingForDeliverer {
		return 0, s.transitionError("claim")
	}
	return OrderReceived, nil
}

// StartTransit transitions the status from OrderReceived to InTransit.
// Performed when the deliverer confirms pickup.
func (s Status) StartTransit() (Status, error) {
	if s != OrderReceived {
		return 0, s.transitionError("start transit for")
	}
	return InTransit, nil
}

// Deliver transitions the status from InTransit to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, s.transitionError("deliver")
	}
	return Delivered, nil
}

// Fail transitions the status to FailedDelivery.
// Allowed from OrderReceived or InTransit: a deliverer can cancel any time
// after claiming and before drop-off.
func (s Status) Fail() (Status, error) {
	if s != OrderReceived && s != InTransit {
		return 0, s.transitionError("fail")
	}
	return FailedDelivery, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("orderStatus",
		fmt.Errorf("%s is not a valid status to %s an order", s.String(), action))
}
