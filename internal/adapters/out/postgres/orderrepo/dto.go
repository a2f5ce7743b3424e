// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and partner assignment.
type OrderDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	OrderID           string `gorm:"uniqueIndex;size:64"`
	Items             string
	PrepTime          int
	Status            int    `gorm:"index"`
	AssignedPartnerID *int64 `gorm:"index"`
	DispatchTime      *time.Time
	DeliveryTime      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional partner assignment. A zero
// identifier is preserved so the database can assign one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *int64
	if id := aggregate.AssignedPartner(); id != nil {
		raw := id.Int64()
		partnerID = &raw
	}

	return OrderDTO{
		ID:                aggregate.ID().Int64(),
		OrderID:           aggregate.OrderID(),
		Items:             aggregate.Items(),
		PrepTime:          aggregate.PrepTime(),
		Status:            int(aggregate.Status()),
		AssignedPartnerID: partnerID,
		DispatchTime:      aggregate.DispatchTime(),
		DeliveryTime:      aggregate.DeliveryTime(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, assignment,
// and lifecycle timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.ID
	if dto.AssignedPartnerID != nil {
		pID, partnerErr := kernel.NewID(*dto.AssignedPartnerID)
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	return order.RestoreOrder(
		id,
		dto.OrderID,
		dto.Items,
		dto.PrepTime,
		order.Status(dto.Status),
		partnerID,
		dto.DispatchTime,
		dto.DeliveryTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
