package order

import (
	"errors"
	"fmt"
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
	"opspro/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAttached is returned when AttachID is called on an order
	// that already carries a server-assigned identifier.
	ErrOrderIDAlreadyAttached = errors.New("order already has a server-assigned id")
)

// Order represents a delivery order. It is the aggregate root that owns the
// order lifecycle from creation through partner assignment to delivery.
//
// Order maintains these invariants:
//   - The external order reference and items are non-empty
//   - Preparation time is positive
//   - Status only moves forward through adjacent states of the fixed
//     sequence Prep -> Ready -> Picked -> OnRoute -> Delivered
//   - A partner may be pre-assigned while the order is Prep or Ready;
//     every order past Ready has exactly one assigned partner, forever
//     (there is no unassignment or reassignment)
//   - dispatchTime is set once, the first time the order has both a partner
//     and a status of Ready or later; deliveryTime is set only on Delivered
//
// The struct uses private fields to ensure encapsulation; mutation happens
// only through validated methods, and failed operations leave the order
// untouched.
type Order struct {
	// id is the server-assigned identifier; zero until persisted
	id kernel.ID

	// orderID is the human-entered external reference
	orderID string

	// items is a free-text description of the order contents
	items string

	// prepTime is the preparation time in minutes
	prepTime int

	// status is the current state in the order lifecycle
	status Status

	// assignedPartnerID references the delivery partner (nil if unassigned)
	assignedPartnerID *kernel.ID

	// dispatchTime marks when the order first became dispatchable
	dispatchTime *time.Time

	// deliveryTime marks when the order was delivered
	deliveryTime *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Prep status with no assigned partner.
// This is the only way to create a fresh order, ensuring all invariants hold
// from the start. The server-assigned identifier is attached by the
// repository on first persist.
//
// Parameters:
//   - orderID: human-entered external reference (must be non-empty)
//   - items: free-text order contents (must be non-empty)
//   - prepTime: preparation time in minutes (must be positive)
//   - now: creation timestamp
//
// Returns a ValidationError if any parameter is invalid. Creation has no
// side effects on partner state.
func NewOrder(orderID, items string, prepTime int, now time.Time) (*Order, error) {
	o := &Order{
		status:    Prep,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrderID(orderID),
		o.setItems(items),
		o.setPrepTime(prepTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, this constructor restores the order to its previously
// persisted state including status, assignment, and timestamps, and checks
// the status/partner consistency invariant.
func RestoreOrder(
	id kernel.ID,
	orderID, items string,
	prepTime int,
	status Status,
	assignedPartnerID *kernel.ID,
	dispatchTime, deliveryTime *time.Time,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:       status,
		dispatchTime: dispatchTime,
		deliveryTime: deliveryTime,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		status.ValidateCanHavePartner(assignedPartnerID != nil),
		o.setOrderID(orderID),
		o.setItems(items),
		o.setPrepTime(prepTime),
	); err != nil {
		return nil, err
	}

	o.id = id
	if assignedPartnerID != nil {
		if err := assignedPartnerID.Validate(); err != nil {
			return nil, err
		}
		partnerID := *assignedPartnerID
		o.assignedPartnerID = &partnerID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their server-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the server-assigned identifier.
// The zero ID is returned for orders that have not been persisted yet.
func (o *Order) ID() kernel.ID {
	return o.id
}

// AttachID binds the server-assigned identifier to a freshly persisted order.
// Returns ErrOrderIDAlreadyAttached if the order already carries one.
func (o *Order) AttachID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.Validate() == nil {
		return ErrOrderIDAlreadyAttached
	}

	o.id = id
	return nil
}

// OrderID returns the human-entered external reference.
func (o *Order) OrderID() string {
	return o.orderID
}

// Items returns the free-text description of the order contents.
func (o *Order) Items() string {
	return o.items
}

// PrepTime returns the preparation time in minutes.
func (o *Order) PrepTime() int {
	return o.prepTime
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedPartner returns the assigned partner's ID, or nil if unassigned.
func (o *Order) AssignedPartner() *kernel.ID {
	if o.assignedPartnerID == nil {
		return nil
	}
	partnerID := *o.assignedPartnerID
	return &partnerID
}

// DispatchTime returns when the order first became dispatchable, or nil.
func (o *Order) DispatchTime() *time.Time {
	return o.dispatchTime
}

// DeliveryTime returns when the order was delivered, or nil.
func (o *Order) DeliveryTime() *time.Time {
	return o.deliveryTime
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsActive reports whether the order still holds its partner exclusively,
// i.e. it is not Delivered.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// Assign pre-assigns a delivery partner to the order.
//
// This method enforces the order-local rules only:
//   - The order must be in Prep or Ready status
//   - The order must not already have a partner (no reassignment)
//
// Whether the partner is assignable at all (available and free of active
// assignments) is a derived rule over the whole order set and is checked by
// the application layer before calling Assign.
//
// Assign does not advance the status. If the order is already Ready, the
// dispatch time is recorded, since the order now has both a partner and a
// dispatchable status.
//
// Returns an InvalidStateError if the order already has a partner or has
// progressed past Ready.
func (o *Order) Assign(partnerID kernel.ID, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.assignedPartnerID != nil {
		return errs.NewInvalidStateError("order is already assigned to a partner")
	}
	if o.status != Prep && o.status != Ready {
		return errs.NewInvalidStateErrorWithCause("partner can only be assigned while order is PREP or READY",
			fmt.Errorf("status is %s", o.status))
	}

	o.assignedPartnerID = &partnerID
	o.markDispatched(now)
	o.touch(now)
	return nil
}

// Advance moves the order to the requested status.
//
// The requested status must be the single next state after the current one
// in the fixed sequence; no jumps and no going backward. Role gating:
//
//   - Prep -> Ready: manager only
//   - Ready -> Picked, Picked -> OnRoute, OnRoute -> Delivered: the
//     assigned partner only, matched against the acting identity
//
// On Delivered the delivery time is set to now. The dispatch time is
// recorded the first time the order has both a partner and a status of
// Ready or later.
//
// Any attempt to set a non-adjacent status, a status outside the acting
// role, or any status on a Delivered order fails with an
// InvalidTransitionError, leaving the order untouched. Repeating an
// already applied transition fails the same way rather than silently
// succeeding.
func (o *Order) Advance(requested Status, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := requested.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithDetails(
			o.status.String(), requested.String(), "order is already delivered")
	}

	next, err := o.status.Next()
	if err != nil {
		return err
	}
	if requested != next {
		return errs.NewInvalidTransitionError(o.status.String(), requested.String())
	}

	if err := o.authorizeAdvance(requested, actor); err != nil {
		return err
	}

	o.status = requested
	if requested == Delivered {
		deliveredAt := now
		o.deliveryTime = &deliveredAt
	}
	o.markDispatched(now)
	o.touch(now)
	return nil
}

// authorizeAdvance checks that the acting identity holds the role the
// requested transition demands.
func (o *Order) authorizeAdvance(requested Status, actor kernel.Actor) error {
	switch requested.AdvanceRole() {
	case kernel.RoleManager:
		if actor.Role() != kernel.RoleManager {
			return errs.NewInvalidTransitionErrorWithDetails(
				o.status.String(), requested.String(), "manager role required")
		}
	case kernel.RolePartner:
		if o.assignedPartnerID == nil {
			return errs.NewInvalidTransitionErrorWithDetails(
				o.status.String(), requested.String(), "order has no assigned partner")
		}
		if !actor.IsPartner(*o.assignedPartnerID) {
			return errs.NewInvalidTransitionErrorWithDetails(
				o.status.String(), requested.String(), "only the assigned partner may advance this order")
		}
	case kernel.RoleUnknown:
		fallthrough
	default:
		return errs.NewInvalidTransitionError(o.status.String(), requested.String())
	}
	return nil
}

// markDispatched records the dispatch time once, the first time the order
// has both a partner and a status of Ready or later.
func (o *Order) markDispatched(now time.Time) {
	if o.dispatchTime != nil {
		return
	}
	if o.assignedPartnerID == nil || o.status == Prep {
		return
	}
	dispatchedAt := now
	o.dispatchTime = &dispatchedAt
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValidationError("orderId")
	}
	o.orderID = orderID
	return nil
}

func (o *Order) setItems(items string) error {
	if items == "" {
		return errs.NewValidationError("items")
	}
	o.items = items
	return nil
}

func (o *Order) setPrepTime(prepTime int) error {
	if prepTime <= 0 {
		return errs.NewValidationErrorWithCause("prepTime",
			fmt.Errorf("%d is not greater than 0", prepTime))
	}
	o.prepTime = prepTime
	return nil
}
