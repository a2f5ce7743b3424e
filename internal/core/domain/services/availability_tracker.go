package services

import (
	"opspro/internal/core/domain/model/order"
	"opspro/internal/core/domain/model/partner"
)

// AvailabilityTracker is the domain service that derives which partners are
// eligible for new assignment at any instant.
//
// A partner is assignable iff its availability flag is on AND it is not the
// assigned partner of any order whose status is not Delivered. This is a
// derived rule, not a stored flag: it must be recomputed from the full
// order set after every order mutation and every availability toggle,
// because either can change membership. No caching across mutations is
// permitted; staleness here directly causes double-assignment bugs.
//
// The same function backs both the assignment command and the
// available-partners query, so the filtering logic exists in exactly one
// place.
//
// Example usage:
//
//	tracker := services.NewAvailabilityTracker()
//	assignable, err := tracker.Assignable(partners, orders)
//	if err != nil {
//	    // a partner or order aggregate was not properly constructed
//	}
//	for _, p := range assignable {
//	    fmt.Printf("eligible: %s\n", p.Name())
//	}
type AvailabilityTracker struct{}

// NewAvailabilityTracker creates a new AvailabilityTracker instance.
func NewAvailabilityTracker() AvailabilityTracker {
	return AvailabilityTracker{}
}

// Assignable computes the set of partners eligible for new assignment from
// the current partner roster and the full order set.
//
// The result preserves the input partner order. All aggregates are
// validated before use; an improperly constructed partner or order fails
// the whole computation rather than silently skewing the set.
func (t AvailabilityTracker) Assignable(
	partners []*partner.DeliveryPartner,
	orders []*order.Order,
) ([]*partner.DeliveryPartner, error) {
	activeAssignments, err := t.activeAssignments(orders)
	if err != nil {
		return nil, err
	}

	assignable := make([]*partner.DeliveryPartner, 0, len(partners))
	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsAvailable() {
			continue
		}
		if _, busy := activeAssignments[p.ID().Int64()]; busy {
			continue
		}

		assignable = append(assignable, p)
	}

	return assignable, nil
}

// IsAssignable reports whether a single partner is eligible for new
// assignment given the full order set. Used by the assignment command to
// re-check eligibility at the moment of assignment, inside the same
// transaction that writes it.
func (t AvailabilityTracker) IsAssignable(p *partner.DeliveryPartner, orders []*order.Order) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	if !p.IsAvailable() {
		return false, nil
	}

	activeAssignments, err := t.activeAssignments(orders)
	if err != nil {
		return false, err
	}

	_, busy := activeAssignments[p.ID().Int64()]
	return !busy, nil
}

// activeAssignments collects the ids of partners holding a non-Delivered order.
func (t AvailabilityTracker) activeAssignments(orders []*order.Order) (map[int64]struct{}, error) {
	active := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		assigned := o.AssignedPartner()
		if assigned == nil || !o.IsActive() {
			continue
		}
		active[assigned.Int64()] = struct{}{}
	}

	return active, nil
}
