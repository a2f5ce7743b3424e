package commands

import (
	"context"
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
)

// UpdateETACommandHandler records a partner's estimated arrival time.
// Only the partner themselves may report it.
type UpdateETACommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdateETACommandHandler creates a handler for ETA updates.
func NewUpdateETACommandHandler(uowFactory PartnerUoWFactory) UpdateETACommandHandler {
	return UpdateETACommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ETA update command.
func (h UpdateETACommandHandler) Handle(ctx context.Context, command UpdateETACommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if actor.Role() != kernel.RolePartner || !actor.IsPartner(command.PartnerID()) {
		return errs.NewAuthError("only the partner can report their own ETA")
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

	if err = lockedPartner.SetETA(command.ETA(), time.Now().UTC()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, lockedPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
