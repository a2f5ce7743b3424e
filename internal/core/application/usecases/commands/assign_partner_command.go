package commands

import (
	"errors"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a request to assign a delivery partner
// to a specific order.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	partnerID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to assign a partner to an order.
// Both identifiers must be valid server-assigned IDs.
func NewAssignPartnerCommand(orderID, partnerID kernel.ID) (AssignPartnerCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		partnerID.Validate(),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return AssignPartnerCommand{
		orderID:   orderID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignPartnerCommand) OrderID() kernel.ID {
	return c.orderID
}

// PartnerID returns the identifier of the partner to assign.
func (c AssignPartnerCommand) PartnerID() kernel.ID {
	return c.partnerID
}
