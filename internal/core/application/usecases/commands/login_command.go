package commands

import (
	"errors"

	"opspro/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a credential check for an operator or partner.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command carrying login credentials.
func NewLoginCommand(username, password string) (LoginCommand, error) {
	if username == "" {
		return LoginCommand{}, ErrUsernameIsRequired
	}
	if password == "" {
		return LoginCommand{}, ErrPasswordIsRequired
	}

	return LoginCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name being checked.
func (c LoginCommand) Username() string {
	return c.username
}

// Password returns the plaintext password being checked.
func (c LoginCommand) Password() string {
	return c.password
}
