// Package accountrepo persists users and their address books in JSON file
// collections.
package accountrepo

import (
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the stored shape of a user record.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
}

// AddressDTO is the stored shape of an address record.
type AddressDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
}

// UserID extracts the identifier of a stored user record.
func UserID(dto UserDTO) uuid.UUID { return dto.ID }

// AddressID extracts the identifier of a stored address record.
func AddressID(dto AddressDTO) uuid.UUID { return dto.ID }

func userFromDomain(u *account.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Bytes(),
		CreatedAt: u.CreatedAt(),
		IsDeleted: u.IsDeleted(),
		Name:      u.Name(),
		Phone:     u.Phone(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	return account.RestoreUser(id, dto.CreatedAt, dto.IsDeleted, dto.Name, dto.Phone)
}

func addressFromDomain(a *account.Address) AddressDTO {
	return AddressDTO{
		ID:        a.ID().Bytes(),
		CreatedAt: a.CreatedAt(),
		IsDeleted: a.IsDeleted(),
		UserID:    a.UserID().Bytes(),
		Text:      a.Text(),
	}
}

func addressToDomain(dto AddressDTO) (*account.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID)
	if err != nil {
		return nil, err
	}
	return account.RestoreAddress(id, dto.CreatedAt, dto.IsDeleted, userID, dto.Text)
}
