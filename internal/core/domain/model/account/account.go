package account

import (
	"errors"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
	"opspro/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrAccountIsNotConstructed is returned when using an improperly
	// initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

	// ErrAccountIDAlreadyAttached is returned when AttachID is called on an
	// account that already carries a server-assigned identifier.
	ErrAccountIDAlreadyAttached = errors.New("account already has a server-assigned id")
)

// Account represents a login identity. A session binds exactly one account,
// and the account's role is immutable for the session's lifetime: it
// determines which operations are permitted.
//
// Partner accounts are linked to their DeliveryPartner by username.
// Passwords are stored only as bcrypt hashes.
type Account struct {
	// id is the server-assigned identifier; zero until persisted
	id kernel.ID

	username     string
	passwordHash string
	role         kernel.Role

	guard guard.ConstructorGuard
}

// NewAccount creates an account with a freshly hashed password.
//
// Returns a ValidationError for an empty username or password, or an
// invalid role.
func NewAccount(username, password string, role kernel.Role) (*Account, error) {
	if username == "" {
		return nil, errs.NewValidationError("username")
	}
	if password == "" {
		return nil, errs.NewValidationError("password")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Account{
		username:     username,
		passwordHash: string(hash),
		role:         role,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an Account from persistent storage.
func RestoreAccount(id kernel.ID, username, passwordHash string, role kernel.Role) (*Account, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValidationError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("passwordHash")
	}

	return &Account{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Account was properly constructed through a factory method.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the server-assigned identifier.
func (a *Account) ID() kernel.ID {
	return a.id
}

// AttachID binds the server-assigned identifier to a freshly persisted account.
func (a *Account) AttachID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if a.id.Validate() == nil {
		return ErrAccountIDAlreadyAttached
	}

	a.id = id
	return nil
}

// Username returns the login name.
func (a *Account) Username() string {
	return a.username
}

// PasswordHash returns the stored bcrypt hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's role.
func (a *Account) Role() kernel.Role {
	return a.role
}

// VerifyPassword compares a candidate password against the stored hash.
// Returns an AuthError when they do not match.
func (a *Account) VerifyPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return errs.NewAuthError("invalid credentials")
	}
	return nil
}
