package kernel

import (
	"fmt"

	"opspro/internal/pkg/errs"
)

// Role represents the session role that determines which operations an
// authenticated user may perform. A session binds exactly one role and the
// role is immutable for the session's lifetime.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleManager creates orders, assigns partners, and marks orders ready.
	RoleManager

	// RolePartner executes and advances its own assigned orders.
	RolePartner
)

// getRoleStrings returns a map of Role values to their wire representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleManager: "MANAGER",
		RolePartner: "PARTNER",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleManager: "MANAGER",
		RolePartner: "PARTNER",
	}
}

// RoleFromString parses a wire role string ("MANAGER" or "PARTNER").
// Returns a ValidationError for any other value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValidationErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are RoleManager and RolePartner.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValidationErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
