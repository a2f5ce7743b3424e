// Package ports defines repository interfaces for the delivery operations domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and must not carry an identifier yet:
	// storage assigns one and the repository attaches it to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its identifier and
	// locks the backing row for the duration of the current transaction.
	// Must only be called inside an active unit of work.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves every order ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllActive retrieves all orders that have not reached the
	// DELIVERED status. Used to derive partner assignment exclusivity.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
