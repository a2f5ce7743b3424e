// Package services provides domain services that implement business rules
// spanning multiple aggregates in the delivery-operations system.
//
// The package includes:
//   - AvailabilityTracker: derives the set of partners eligible for new
//     assignment from the partner roster and the full order set
//
// Domain services coordinate between aggregates, implementing logic that
// doesn't naturally belong to a single aggregate root.
package services
