package kernel

import (
	"fmt"
	"strconv"

	"opspro/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID holds no server-assigned value.
// The zero value of ID is invalid and fails Validate.
var ErrIDIsNotConstructed = errs.NewValidationError("ID must be created via NewID")

// ID is a value object wrapping the numeric identifier the database assigns
// to every entity. A valid ID is always positive; the zero value marks an
// entity that has not been persisted yet.
//
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a server-assigned numeric value.
// Returns a ValidationError if the value is not positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValidationErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ID{value: value}, nil
}

// IDFromString parses an ID from its decimal string representation.
// Used when reconstructing identifiers from URL path parameters.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValidationErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the underlying numeric value.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two identifiers for equality.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate checks that the ID carries a server-assigned value.
// Returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
