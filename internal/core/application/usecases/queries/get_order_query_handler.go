package queries

import (
	"context"

	"opspro/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// matches the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_id,
			o.items,
			o.prep_time,
			o.status,
			o.dispatch_time,
			o.delivery_time,
			o.created_at,
			o.updated_at,
			p.id,
			p.username,
			p.name,
			p.phone_number,
			p.is_available,
			p.eta
		FROM orders o
		LEFT JOIN delivery_partners p ON p.id = o.assigned_partner_id
		WHERE o.id = ?
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanOrderRow(rows)
}
