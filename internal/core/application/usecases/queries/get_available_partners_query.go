package queries

import (
	"errors"

	"opspro/internal/pkg/guard"
)

var ErrGetAvailablePartnersQueryIsNotConstructed = errors.New(
	"GetAvailablePartnersQuery must be created via NewGetAvailablePartnersQuery constructor",
)

// GetAvailablePartnersQuery retrieves partners that can take a new order
// right now: on shift and holding no undelivered assignment.
type GetAvailablePartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailablePartnersQuery creates a query for assignable partners.
func NewGetAvailablePartnersQuery() GetAvailablePartnersQuery {
	return GetAvailablePartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePartnersQueryIsNotConstructed)
}
