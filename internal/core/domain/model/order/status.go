package order

import (
	"fmt"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single fixed sequence to ensure
// orders follow the delivery workflow with no skipping and no going back.
//
// State transitions:
//
//	Prep ──> Ready ──> Picked ──> OnRoute ──> Delivered
//
// Delivered is terminal: no further mutation is permitted on an order in
// this state. Status is a value object that validates transitions and
// provides the wire representations used by the REST API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Prep is the initial status when an order is first created.
	// The kitchen is still preparing the order.
	Prep

	// Ready indicates preparation is complete and the order awaits pickup.
	Ready

	// Picked indicates the assigned partner has collected the order.
	Picked

	// OnRoute indicates the assigned partner is delivering the order.
	OnRoute

	// Delivered indicates the order reached the customer.
	// This is the final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Prep:      "PREP",
		Ready:     "READY",
		Picked:    "PICKED",
		OnRoute:   "ON_ROUTE",
		Delivered: "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Prep:      "PREP",
		Ready:     "READY",
		Picked:    "PICKED",
		OnRoute:   "ON_ROUTE",
		Delivered: "DELIVERED",
	}
}

// StatusFromString parses a wire status string such as "PREP" or "ON_ROUTE".
// Returns a ValidationError for any other value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are Prep, Ready, Picked, OnRoute, and Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones, for which it returns "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the single status that follows s in the fixed sequence.
//
// Returns an InvalidTransitionError when called on Delivered (terminal)
// or on an invalid status value.
func (s Status) Next() (Status, error) {
	switch s {
	case Prep:
		return Ready, nil
	case Ready:
		return Picked, nil
	case Picked:
		return OnRoute, nil
	case OnRoute:
		return Delivered, nil
	case Delivered:
		return Unknown, errs.NewInvalidTransitionErrorWithDetails(
			s.String(), "", "order is already delivered")
	case Unknown:
		fallthrough
	default:
		return Unknown, errs.NewInvalidTransitionErrorWithDetails(
			s.String(), "", "status has no successor")
	}
}

// AdvanceRole returns the role permitted to transition an order INTO this
// status:
//
//   - Prep -> Ready is a manager action (the kitchen finishes preparation)
//   - Ready -> Picked, Picked -> OnRoute, and OnRoute -> Delivered are
//     actions of the assigned partner only
//
// Returns RoleUnknown for statuses that are never a transition target
// (Prep is only ever an initial status).
func (s Status) AdvanceRole() kernel.Role {
	switch s {
	case Ready:
		return kernel.RoleManager
	case Picked, OnRoute, Delivered:
		return kernel.RolePartner
	case Prep, Unknown:
		fallthrough
	default:
		return kernel.RoleUnknown
	}
}

// ValidateCanHavePartner validates the consistency between order status and
// partner assignment. An order that has progressed past Ready must have a
// partner; an order in Prep or Ready may be pre-assigned but does not have
// to be.
func (s Status) ValidateCanHavePartner(hasPartner bool) error {
	if !hasPartner && (s == Picked || s == OnRoute || s == Delivered) {
		return errs.NewInvalidStateErrorWithCause("order has no partner",
			fmt.Errorf("%s requires an assigned partner", s.String()))
	}
	return nil
}
