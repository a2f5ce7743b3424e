package commands

import (
	"context"
	"errors"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
)

// LoginResult carries the identity established by a successful login.
// PartnerID is set only for PARTNER-role accounts and resolves the
// delivery partner record behind the account.
type LoginResult struct {
	AccountID kernel.ID
	Username  string
	Role      kernel.Role
	PartnerID *kernel.ID
}

// LoginCommandHandler verifies credentials against stored accounts.
// Unknown usernames and bad passwords both surface as errs.ErrAuth so the
// response does not reveal which part of the credential failed.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewLoginCommandHandler creates a handler for credential checks.
func NewLoginCommandHandler(uowFactory AccountUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the supplied credentials and resolves the actor identity.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (LoginResult, error) {
	if err := command.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()

	storedAccount, err := uow.AccountRepository().GetByUsername(ctx, command.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, errs.NewAuthError("invalid credentials")
		}
		return LoginResult{}, err
	}

	if err = storedAccount.VerifyPassword(command.Password()); err != nil {
		return LoginResult{}, errs.NewAuthError("invalid credentials")
	}

	result := LoginResult{
		AccountID: storedAccount.ID(),
		Username:  storedAccount.Username(),
		Role:      storedAccount.Role(),
	}

	if storedAccount.Role() == kernel.RolePartner {
		linkedPartner, partnerErr := uow.PartnerRepository().GetByUsername(ctx, storedAccount.Username())
		if partnerErr != nil {
			return LoginResult{}, partnerErr
		}
		partnerID := linkedPartner.ID()
		result.PartnerID = &partnerID
	}

	return result, nil
}
