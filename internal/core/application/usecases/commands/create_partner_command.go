package commands

import (
	"errors"

	"opspro/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrUsernameIsRequired    = errors.New("username is required")
	ErrNameIsRequired        = errors.New("name is required")
	ErrPhoneNumberIsRequired = errors.New("phoneNumber is required")
	ErrPasswordIsRequired    = errors.New("password is required")
)

// CreatePartnerCommand represents a request to onboard a new delivery
// partner together with their login account.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	username    string
	name        string
	phoneNumber string
	password    string

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to onboard a delivery partner.
// All fields are required.
func NewCreatePartnerCommand(username, name, phoneNumber, password string) (CreatePartnerCommand, error) {
	partnerCommand := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setUsername(username),
		partnerCommand.setName(name),
		partnerCommand.setPhoneNumber(phoneNumber),
		partnerCommand.setPassword(password),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// Username returns the partner's unique login name.
func (c CreatePartnerCommand) Username() string {
	return c.username
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// PhoneNumber returns the partner's contact number.
func (c CreatePartnerCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Password returns the plaintext password to be hashed during onboarding.
func (c CreatePartnerCommand) Password() string {
	return c.password
}

func (c *CreatePartnerCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *CreatePartnerCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
