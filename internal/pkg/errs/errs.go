package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrPartnerUnavailable = errors.New("partner unavailable")
	ErrObjectNotFound     = errors.New("object not found")
	ErrAuth               = errors.New("not authorized")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValidationError reports a value with a bad shape or range,
// such as an empty order reference or a non-positive prep time.
type ValidationError struct {
	ParamName string
	Cause     error
}

// NewValidationError creates a ValidationError for the given parameter.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an underlying cause.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValidation, e.ParamName))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidStateError reports an operation that is not legal in the entity's
// current state, such as assigning a partner to an order that already has one.
type InvalidStateError struct {
	Details string
	Cause   error
}

// NewInvalidStateError creates an InvalidStateError with a description of the violated rule.
func NewInvalidStateError(details string) *InvalidStateError {
	return &InvalidStateError{Details: details}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(details string, cause error) *InvalidStateError {
	return &InvalidStateError{Details: details, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, e.Details, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidState, e.Details))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidTransitionError reports a status change that is either not adjacent
// in the order lifecycle or not permitted for the acting role.
type InvalidTransitionError struct {
	From    string
	To      string
	Details string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the attempted move.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithDetails creates an InvalidTransitionError with
// an explanation of why the move was rejected.
func NewInvalidTransitionErrorWithDetails(from, to, details string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Details: details}
}

func (e *InvalidTransitionError) Error() string {
	if e.Details != "" {
		return sanitize(fmt.Sprintf("%s: %s -> %s (%s)", ErrInvalidTransition, e.From, e.To, e.Details))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PartnerUnavailableError reports a lost assignment race: the partner was not
// assignable at the moment the assignment was attempted.
type PartnerUnavailableError struct {
	PartnerID any
}

// NewPartnerUnavailableError creates a PartnerUnavailableError for the given partner.
func NewPartnerUnavailableError(partnerID any) *PartnerUnavailableError {
	return &PartnerUnavailableError{PartnerID: partnerID}
}

func (e *PartnerUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrPartnerUnavailable, fmt.Sprint(e.PartnerID)))
}

func (e *PartnerUnavailableError) Unwrap() error {
	return ErrPartnerUnavailable
}

// ObjectNotFoundError reports an unknown entity identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, fmt.Sprint(e.ID), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, fmt.Sprint(e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AuthError reports a missing or invalid session, or a role mismatch for the
// attempted operation.
type AuthError struct {
	Details string
}

// NewAuthError creates an AuthError with a description of the failed check.
func NewAuthError(details string) *AuthError {
	return &AuthError{Details: details}
}

func (e *AuthError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrAuth, e.Details))
}

func (e *AuthError) Unwrap() error {
	return ErrAuth
}
