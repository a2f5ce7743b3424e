package queries

import (
	"context"
	"database/sql"

	"opspro/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPartnersQueryHandler retrieves the delivery partner roster.
// Joins each partner's current undelivered order so the dashboard can show
// who is mid-delivery without a second round trip.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for roster queries.
// Requires a GORM database connection for query execution.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all partners sorted by name.
func (h GetPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersQuery,
) ([]PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.username,
			p.name,
			p.phone_number,
			p.is_available,
			p.eta,
			p.updated_at,
			o.id
		FROM delivery_partners p
		LEFT JOIN orders o ON o.assigned_partner_id = p.id AND o.status != ?
		ORDER BY p.name
	`, int(order.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]PartnerResponse, 0)
	for rows.Next() {
		var partnerResp PartnerResponse
		var eta, activeOrderID sql.NullInt64

		err = rows.Scan(
			&partnerResp.ID,
			&partnerResp.Username,
			&partnerResp.Name,
			&partnerResp.PhoneNumber,
			&partnerResp.IsAvailable,
			&eta,
			&partnerResp.UpdatedAt,
			&activeOrderID,
		)
		if err != nil {
			return nil, err
		}
		partnerResp.UpdatedAt = partnerResp.UpdatedAt.UTC()

		if eta.Valid {
			etaValue := int(eta.Int64)
			partnerResp.ETA = &etaValue
		}
		if activeOrderID.Valid {
			orderID := activeOrderID.Int64
			partnerResp.ActiveOrderID = &orderID
		}

		partners = append(partners, partnerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
