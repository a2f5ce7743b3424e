package commands

import (
	"errors"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/order"
	"opspro/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order one step
// forward in its lifecycle on behalf of an authenticated actor.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	status  order.Status
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status.
// The requested status must be a valid lifecycle status and the actor must
// be properly constructed.
func NewAdvanceOrderStatusCommand(
	orderID kernel.ID,
	status order.Status,
	actor kernel.Actor,
) (AdvanceOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
		actor.Validate(),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID: orderID,
		status:  status,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being advanced.
func (c AdvanceOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// Status returns the requested target status.
func (c AdvanceOrderStatusCommand) Status() order.Status {
	return c.status
}

// Actor returns the authenticated identity requesting the transition.
func (c AdvanceOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}
