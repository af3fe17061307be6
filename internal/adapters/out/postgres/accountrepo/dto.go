// Package accountrepo persists account aggregates.
package accountrepo

import (
	"time"

	"brokerage/internal/core/domain/model/account"
	"brokerage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is the database representation of an account aggregate.
type AccountDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"uniqueIndex"`
	Username      string    `gorm:"uniqueIndex"`
	Phone         string
	FirstName     string
	LastName      string
	PasswordHash  string
	ClientCode    string `gorm:"uniqueIndex"`
	Staff         bool
	EmailVerified bool
	Country       string
	City          string
	Address       string
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:            aggregate.ID().Bytes(),
		Email:         aggregate.Email(),
		Username:      aggregate.Username(),
		Phone:         aggregate.Phone(),
		FirstName:     aggregate.FirstName(),
		LastName:      aggregate.LastName(),
		PasswordHash:  aggregate.PasswordHash(),
		ClientCode:    aggregate.ClientCode(),
		Staff:         aggregate.IsStaff(),
		EmailVerified: aggregate.EmailVerified(),
		Country:       aggregate.Country(),
		City:          aggregate.City(),
		Address:       aggregate.Address(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(account.RestoreAccountParams{
		ID:            id,
		Email:         dto.Email,
		Username:      dto.Username,
		Phone:         dto.Phone,
		FirstName:     dto.FirstName,
		LastName:      dto.LastName,
		PasswordHash:  dto.PasswordHash,
		ClientCode:    dto.ClientCode,
		Staff:         dto.Staff,
		EmailVerified: dto.EmailVerified,
		Country:       dto.Country,
		City:          dto.City,
		Address:       dto.Address,
		CreatedAt:     dto.CreatedAt,
	})
}
