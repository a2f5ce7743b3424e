package queries

import (
	"errors"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/guard"
)

var ErrGetPartnerQueryIsNotConstructed = errors.New(
	"GetPartnerQuery must be created via NewGetPartnerQuery constructor",
)

// GetPartnerQuery retrieves a single delivery partner with their active order.
type GetPartnerQuery struct {
	partnerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetPartnerQuery creates a query for one partner by identifier.
func NewGetPartnerQuery(partnerID kernel.ID) (GetPartnerQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerQuery{}, err
	}

	return GetPartnerQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerQueryIsNotConstructed)
}

// PartnerID returns the identifier being looked up.
func (q GetPartnerQuery) PartnerID() kernel.ID {
	return q.partnerID
}
