package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Dispatched ──> Delivered
//	   │            │              │
//	   └────────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are allowed.
// Status is a value object that validates transitions and provides the string
// representations used in the API and for persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is created and awaiting payment.
	Pending

	// Confirmed indicates payment was captured and the order is being prepared.
	Confirmed

	// Dispatched indicates the order has been handed to a courier.
	Dispatched

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a status from its API string representation.
// Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase API name of the status, "unknown" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Advance transitions the status one step forward in the fulfillment sequence.
//
// Valid transitions:
//   - Pending -> Confirmed
//   - Confirmed -> Dispatched
//   - Dispatched -> Delivered
//
// Skipping states is not possible: each call moves exactly one step.
// Returns an InvalidTransitionError when called on a terminal or invalid status.
func (s Status) Advance() (Status, error) {
	switch s {
	case Pending:
		return Confirmed, nil
	case Confirmed:
		return Dispatched, nil
	case Dispatched:
		return Delivered, nil
	default:
		return Unknown, errs.NewInvalidTransitionErrorWithCause(s.String(), s.String(),
			fmt.Errorf("%s is a terminal status", s.String()))
	}
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Cancelling an already-cancelled status
// is an idempotent no-op and returns Cancelled without error. Cancelling a
// delivered order returns an InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Confirmed, Dispatched, Cancelled:
		return Cancelled, nil
	default:
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
}
