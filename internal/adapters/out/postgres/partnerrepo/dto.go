// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence.
package partnerrepo

import (
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/partner"
)

// PartnerDTO represents the database structure for persisting delivery
// partner aggregates.
type PartnerDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Username    string `gorm:"uniqueIndex;size:64"`
	Name        string
	PhoneNumber string
	IsAvailable bool `gorm:"index"`
	ETA         *int `gorm:"column:eta"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivery partner entities.
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a delivery partner aggregate to its database
// representation. A zero identifier is preserved so the database can assign
// one on insert.
func fromDomain(aggregate *partner.DeliveryPartner) PartnerDTO {
	return PartnerDTO{
		ID:          aggregate.ID().Int64(),
		Username:    aggregate.Username(),
		Name:        aggregate.Name(),
		PhoneNumber: aggregate.PhoneNumber(),
		IsAvailable: aggregate.IsAvailable(),
		ETA:         aggregate.ETA(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery partner aggregate using
// RestoreDeliveryPartner.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return partner.RestoreDeliveryPartner(
		id,
		dto.Username,
		dto.Name,
		dto.PhoneNumber,
		dto.IsAvailable,
		dto.ETA,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
