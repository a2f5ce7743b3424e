// Package order provides domain entities and business logic for order
// management in the delivery-operations system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root owning identity, assignment, and lifecycle
//   - Status: a state machine enforcing the fixed delivery sequence
//
// Key business rules:
//   - Orders carry a non-empty external reference, non-empty items, and a
//     positive preparation time
//   - Status follows the fixed workflow PREP -> READY -> PICKED ->
//     ON_ROUTE -> DELIVERED with no skipping and no going backward;
//     DELIVERED is terminal
//   - A partner may be pre-assigned while the order is PREP or READY; once
//     assigned, the partner is never changed or removed
//   - PREP -> READY is a manager action; every later transition belongs to
//     the assigned partner, matched against the authenticated identity
//   - Delivery time is recorded on DELIVERED; dispatch time is recorded
//     once, the first time the order has both a partner and a status of
//     READY or later
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation so that no operation ever
// leaves an order in a partially mutated state.
package order
