package commands

import (
	"context"
	"time"

	"opspro/internal/core/domain/model/account"
	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler onboards a delivery partner.
// Creates the partner record and their PARTNER-role login account in one
// transaction; new partners start unavailable until they go on shift.
type CreatePartnerCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner onboarding.
func NewCreatePartnerCommandHandler(uowFactory AccountUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner onboarding command.
// Returns the server-assigned identifier of the new partner.
func (h *CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	newPartner, err := partner.NewDeliveryPartner(
		cmd.Username(), cmd.Name(), cmd.PhoneNumber(), false, time.Now().UTC())
	if err != nil {
		return kernel.ID{}, err
	}

	newAccount, err := account.NewAccount(cmd.Username(), cmd.Password(), kernel.RolePartner)
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, newPartner); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return newPartner.ID(), nil
}
