package queries

import (
	"context"
	"database/sql"

	"opspro/internal/core/domain/model/order"
	"opspro/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerQueryHandler retrieves a single partner with their active order.
type GetPartnerQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerQueryHandler creates a handler for single-partner lookups.
func NewGetPartnerQueryHandler(db *gorm.DB) GetPartnerQueryHandler {
	return GetPartnerQueryHandler{db: db}
}

// Handle executes the query to retrieve one partner by identifier.
func (h GetPartnerQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerQuery,
) (PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return PartnerResponse{}, err
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
		WHERE p.id = ?
	`, int(order.Delivered), query.PartnerID().Int64()).Rows()
	if err != nil {
		return PartnerResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PartnerResponse{}, err
		}
		return PartnerResponse{}, errs.NewObjectNotFoundError(
			"partner", query.PartnerID().String())
	}

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
		return PartnerResponse{}, err
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

	return partnerResp, nil
}
