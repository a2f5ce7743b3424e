// Package kernel contains shared value objects used across the domain model.
//
// The package includes:
//   - ID: a server-assigned numeric entity identifier
//   - Role: the session role that gates operations (manager or partner)
//   - Actor: the authenticated identity performing an operation
//
// Value objects in this package are immutable and validate themselves, so
// aggregates can rely on them without re-checking invariants.
package kernel
