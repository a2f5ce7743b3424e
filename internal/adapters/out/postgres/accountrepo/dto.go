// Package accountrepo provides data transfer objects and mapping functions
// for authentication account persistence.
package accountrepo

import (
	"time"

	"opspro/internal/core/domain/model/account"
	"opspro/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting accounts.
type AccountDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64"`
	PasswordHash string
	Role         string `gorm:"size:16"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account aggregate to its database representation.
// A zero identifier is preserved so the database can assign one on insert.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Int64(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

// toDomain converts a database DTO to an account aggregate using RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Username, dto.PasswordHash, role)
}
