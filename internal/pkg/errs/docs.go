// Package errs provides standardized error types for the delivery-operations
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class of the core:
//   - ValidationError: bad input shape or range
//   - InvalidStateError: operation not legal in the entity's current state
//   - InvalidTransitionError: status change not adjacent or not role-permitted
//   - PartnerUnavailableError: assignment race lost
//   - ObjectNotFoundError: entity id unknown
//   - AuthError: no/invalid session or role mismatch
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValidation) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The core validates synchronously and returns one of these immediately;
// no partial mutation is applied on failure. The HTTP adapter maps the
// sentinel of each kind onto a status code, so classification is always done
// with errors.Is rather than string matching.
package errs
