package commands

import (
	"context"
	"time"

	"opspro/internal/core/domain/services"
	"opspro/internal/pkg/errs"
)

// AssignPartnerCommandHandler orchestrates partner assignment to orders.
// Re-derives partner assignability inside the transaction so that two
// concurrent assignments cannot both claim the same partner.
//
// Example:
//
//	handler := NewAssignPartnerCommandHandler(uowFactory)
//	cmd, _ := NewAssignPartnerCommand(orderID, partnerID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPartnerUnavailable):
//	    log.Println("Partner is off shift or already delivering")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Partner assigned successfully")
//	}
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	tracker    services.AvailabilityTracker
}

// NewAssignPartnerCommandHandler creates a handler for partner assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignPartnerCommandHandler(uowFactory UoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		tracker:    services.NewAvailabilityTracker(),
	}
}

// Handle processes the partner assignment command.
// Locks both the order and the partner rows, checks that the partner is
// available and holds no undelivered order, and records the assignment.
// Returns errs.ErrPartnerUnavailable when the assignability check fails.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, command AssignPartnerCommand) error {
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
	partnerRepo := uow.PartnerRepository()

	lockedOrder, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	lockedPartner, err := partnerRepo.GetForUpdate(ctx, command.PartnerID())
	if err != nil {
		return err
	}

	activeOrders, err := orderRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	assignable, err := h.tracker.IsAssignable(lockedPartner, activeOrders)
	if err != nil {
		return err
	}
	if !assignable {
		return errs.NewPartnerUnavailableError(command.PartnerID().Int64())
	}

	if err = lockedOrder.Assign(lockedPartner.ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, lockedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
