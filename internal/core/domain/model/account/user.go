// Package account contains the customer-facing identity entities: the User
// placing orders and the delivery Address book attached to a user.
package account

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a customer account.
type User struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	name      string
	phone     string

	isConstructed bool
}

// NewUser creates a user with the given name and phone.
func NewUser(id kernel.UUID, name, phone string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &User{
		id:            id,
		createdAt:     time.Now().UTC(),
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// RestoreUser rehydrates a user from persistence.
func RestoreUser(id kernel.UUID, createdAt time.Time, isDeleted bool, name, phone string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &User{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// CreatedAt returns the construction timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// IsDeleted returns the soft-delete flag.
func (u *User) IsDeleted() bool { return u.isDeleted }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Phone returns the user's contact phone.
func (u *User) Phone() string { return u.phone }
