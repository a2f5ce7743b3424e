package queries

import (
	"context"
	"database/sql"

	"opspro/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// the assigned partner summary is joined in rather than loaded per order.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns order read models, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
	`
	args := make([]any, 0, 1)
	if status := query.Status(); status != nil {
		sqlQuery += " WHERE o.status = ?"
		args = append(args, int(*status))
	}
	sqlQuery += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one joined row onto the order read model.
// Partner columns are nullable because unassigned orders have no match.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var orderResp OrderResponse
	var statusValue int
	var dispatchTime, deliveryTime sql.NullTime
	var partnerID sql.NullInt64
	var partnerUsername, partnerName, partnerPhone sql.NullString
	var partnerAvailable sql.NullBool
	var partnerETA sql.NullInt64

	err := rows.Scan(
		&orderResp.ID,
		&orderResp.OrderRef,
		&orderResp.Items,
		&orderResp.PrepTime,
		&statusValue,
		&dispatchTime,
		&deliveryTime,
		&orderResp.CreatedAt,
		&orderResp.UpdatedAt,
		&partnerID,
		&partnerUsername,
		&partnerName,
		&partnerPhone,
		&partnerAvailable,
		&partnerETA,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderResp.Status = order.Status(statusValue).String()

	if dispatchTime.Valid {
		t := dispatchTime.Time.UTC()
		orderResp.DispatchTime = &t
	}
	if deliveryTime.Valid {
		t := deliveryTime.Time.UTC()
		orderResp.DeliveryTime = &t
	}
	orderResp.CreatedAt = orderResp.CreatedAt.UTC()
	orderResp.UpdatedAt = orderResp.UpdatedAt.UTC()

	if partnerID.Valid {
		assigned := &AssignedPartnerResponse{
			ID:          partnerID.Int64,
			Username:    partnerUsername.String,
			Name:        partnerName.String,
			PhoneNumber: partnerPhone.String,
			IsAvailable: partnerAvailable.Bool,
		}
		if partnerETA.Valid {
			eta := int(partnerETA.Int64)
			assigned.ETA = &eta
		}
		orderResp.AssignedPartner = assigned
	}

	return orderResp, nil
}
