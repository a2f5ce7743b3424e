package commands

import (
	"errors"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/guard"
)

var ErrToggleAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleAvailabilityCommand must be created via NewToggleAvailabilityCommand constructor",
)

// ToggleAvailabilityCommand represents a request to change a delivery
// partner's availability flag.
type ToggleAvailabilityCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.ID
	isAvailable bool
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewToggleAvailabilityCommand creates a command to set a partner's
// availability flag on behalf of an authenticated actor.
func NewToggleAvailabilityCommand(
	partnerID kernel.ID,
	isAvailable bool,
	actor kernel.Actor,
) (ToggleAvailabilityCommand, error) {
	if err := errors.Join(
		partnerID.Validate(),
		actor.Validate(),
	); err != nil {
		return ToggleAvailabilityCommand{}, err
	}

	return ToggleAvailabilityCommand{
		partnerID:   partnerID,
		isAvailable: isAvailable,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleAvailabilityCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner whose flag changes.
func (c ToggleAvailabilityCommand) PartnerID() kernel.ID {
	return c.partnerID
}

// IsAvailable returns the requested availability state.
func (c ToggleAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

// Actor returns the authenticated identity requesting the change.
func (c ToggleAvailabilityCommand) Actor() kernel.Actor {
	return c.actor
}
