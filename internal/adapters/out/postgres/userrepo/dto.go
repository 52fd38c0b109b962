// Package userrepo persists users. Emails are stored normalized and are
// unique.
package userrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	SecretHash string    `gorm:"type:varchar(255);not null"`
	Active     bool      `gorm:"not null;default:true"`
	Admin      bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:         u.ID().Bytes(),
		Name:       u.Name(),
		Email:      u.Email(),
		SecretHash: u.SecretHash(),
		Active:     u.IsActive(),
		Admin:      u.IsAdmin(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.SecretHash, dto.Active, dto.Admin)
}
