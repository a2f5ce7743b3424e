package commands

import (
	"errors"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
	"opspro/internal/pkg/guard"
)

var ErrUpdateETACommandIsNotConstructed = errors.New(
	"UpdateETACommand must be created via NewUpdateETACommand constructor",
)

// UpdateETACommand represents a request to record a partner's estimated
// time to reach the restaurant, in minutes.
type UpdateETACommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.ID
	eta       int
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateETACommand creates a command to record a partner's ETA.
// The ETA must not be negative.
func NewUpdateETACommand(partnerID kernel.ID, eta int, actor kernel.Actor) (UpdateETACommand, error) {
	if err := errors.Join(
		partnerID.Validate(),
		actor.Validate(),
	); err != nil {
		return UpdateETACommand{}, err
	}

	if eta < 0 {
		return UpdateETACommand{}, errs.NewValidationError("eta")
	}

	return UpdateETACommand{
		partnerID: partnerID,
		eta:       eta,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateETACommand) Validate() error {
	return c.guard.Validate(ErrUpdateETACommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner reporting the ETA.
func (c UpdateETACommand) PartnerID() kernel.ID {
	return c.partnerID
}

// ETA returns the reported estimate in minutes.
func (c UpdateETACommand) ETA() int {
	return c.eta
}

// Actor returns the authenticated identity reporting the ETA.
func (c UpdateETACommand) Actor() kernel.Actor {
	return c.actor
}
