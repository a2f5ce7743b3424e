package queries

import (
	"errors"
	"time"

	"opspro/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves the full delivery partner roster.
type GetPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a query to retrieve all partners.
// This is a parameterless query that fetches the complete roster.
func NewGetPartnersQuery() GetPartnersQuery {
	return GetPartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// PartnerResponse represents one delivery partner in the roster read model.
// ActiveOrderID points at the partner's current undelivered order, if any.
type PartnerResponse struct {
	ID            int64
	Username      string
	Name          string
	PhoneNumber   string
	IsAvailable   bool
	ETA           *int
	ActiveOrderID *int64
	UpdatedAt     time.Time
}
