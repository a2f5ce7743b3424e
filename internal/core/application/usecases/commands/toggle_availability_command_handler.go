package commands

import (
	"context"
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
)

// ToggleAvailabilityCommandHandler changes a partner's availability flag.
// Only the partner themselves may toggle it. The flag governs future
// assignability only and never clears an existing assignment.
type ToggleAvailabilityCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewToggleAvailabilityCommandHandler creates a handler for availability changes.
func NewToggleAvailabilityCommandHandler(uowFactory PartnerUoWFactory) ToggleAvailabilityCommandHandler {
	return ToggleAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change command.
func (h ToggleAvailabilityCommandHandler) Handle(ctx context.Context, command ToggleAvailabilityCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if actor.Role() != kernel.RolePartner || !actor.IsPartner(command.PartnerID()) {
		return errs.NewAuthError("only the partner can change their own availability")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	lockedPartner, err := partnerRepo.GetForUpdate(ctx, command.PartnerID())
	if err != nil {
		return err
	}

	lockedPartner.SetAvailability(command.IsAvailable(), time.Now().UTC())

	if err = partnerRepo.Update(ctx, lockedPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
