package ports

import (
	"context"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new delivery partner aggregate to storage.
	// The partner must be valid and must not carry an identifier yet:
	// storage assigns one and the repository attaches it to the aggregate.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing delivery partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a delivery partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*partner.DeliveryPartner, error)

	// GetForUpdate retrieves a delivery partner aggregate by its identifier
	// and locks the backing row for the duration of the current transaction.
	// Must only be called inside an active unit of work.
	GetForUpdate(ctx context.Context, id kernel.ID) (*partner.DeliveryPartner, error)

	// GetByUsername retrieves a delivery partner by its unique username.
	// Used to resolve the partner identity behind an authenticated account.
	GetByUsername(ctx context.Context, username string) (*partner.DeliveryPartner, error)

	// GetAll retrieves every delivery partner ordered by name.
	GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error)
}
