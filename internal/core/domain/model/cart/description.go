package cart

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrDescriptionIsNotConstructed is returned when a Description was not
// created through NewDescription or RestoreDescription.
var ErrDescriptionIsNotConstructed = errors.New("Description must be created via NewDescription or RestoreDescription")

// Description holds the free-text reason a deliverer supplied when failing a
// delivery. It is persisted as its own entity and linked from the order.
type Description struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	text      string

	isConstructed bool
}

// NewDescription creates a description with the given text.
func NewDescription(id kernel.UUID, text string) (*Description, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errs.NewValueIsRequiredError("text")
	}

	return &Description{
		id:            id,
		createdAt:     time.Now().UTC(),
		text:          text,
		isConstructed: true,
	}, nil
}

// RestoreDescription rehydrates a description from persistence.
func RestoreDescription(id kernel.UUID, createdAt time.Time, isDeleted bool, text string) (*Description, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errs.NewValueIsRequiredError("text")
	}

	return &Description{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		text:          text,
		isConstructed: true,
	}, nil
}

// Validate ensures the Description was created through a constructor.
func (d *Description) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDescriptionIsNotConstructed
	}
	return nil
}

// ID returns the description's unique identifier.
func (d *Description) ID() kernel.UUID {
	return d.id
}

// CreatedAt returns the construction timestamp.
func (d *Description) CreatedAt() time.Time {
	return d.createdAt
}

// IsDeleted returns the soft-delete flag.
func (d *Description) IsDeleted() bool {
	return d.isDeleted
}

// Text returns the reason text.
func (d *Description) Text() string {
	return d.text
}
