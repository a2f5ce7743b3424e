package commands

import (
	"context"
	"time"
)

// AdvanceOrderStatusCommandHandler applies lifecycle transitions to orders.
// The domain aggregate enforces adjacency, role gating, and terminal-state
// rules; the handler contributes row locking and persistence.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status transitions.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Locks the order row so concurrent transitions on the same order serialize,
// then delegates the transition rules to the aggregate.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, command AdvanceOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	lockedOrder, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = lockedOrder.Advance(command.Status(), command.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, lockedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
