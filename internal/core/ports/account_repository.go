package ports

import (
	"context"

	"opspro/internal/core/domain/model/account"
)

// AccountRepository defines the persistence contract for authentication
// accounts.
type AccountRepository interface {
	// Add persists a new account to storage.
	// The account must be valid and must not carry an identifier yet.
	Add(ctx context.Context, aggregate *account.Account) error

	// GetByUsername retrieves an account by its unique username.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}
