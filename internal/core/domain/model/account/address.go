package account

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

// Address is a delivery destination in a user's address book.
// Confirming a cart requires picking one of the user's addresses.
type Address struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	userID    kernel.UUID
	text      string

	isConstructed bool
}

// NewAddress creates an address for the given user.
func NewAddress(id, userID kernel.UUID, text string) (*Address, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errs.NewValueIsRequiredError("text")
	}

	return &Address{
		id:            id,
		createdAt:     time.Now().UTC(),
		userID:        userID,
		text:          text,
		isConstructed: true,
	}, nil
}

// RestoreAddress rehydrates an address from persistence.
func RestoreAddress(id kernel.UUID, createdAt time.Time, isDeleted bool, userID kernel.UUID, text string) (*Address, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errs.NewValueIsRequiredError("text")
	}

	return &Address{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		userID:        userID,
		text:          text,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was created through a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// BelongsTo reports whether the address is in the given user's address book.
func (a *Address) BelongsTo(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID { return a.id }

// CreatedAt returns the construction timestamp.
func (a *Address) CreatedAt() time.Time { return a.createdAt }

// IsDeleted returns the soft-delete flag.
func (a *Address) IsDeleted() bool { return a.isDeleted }

// UserID returns the owning user's identifier.
func (a *Address) UserID() kernel.UUID { return a.userID }

// Text returns the address text.
func (a *Address) Text() string { return a.text }
