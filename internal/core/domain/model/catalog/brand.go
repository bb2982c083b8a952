package catalog

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrBrandIsNotConstructed is returned when a Brand was not created through
// NewBrand or RestoreBrand.
var ErrBrandIsNotConstructed = errors.New("Brand must be created via NewBrand or RestoreBrand")

// Brand is a restaurant brand owning branches and a food catalog.
type Brand struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	name      string

	isConstructed bool
}

// NewBrand creates a brand with the given name.
func NewBrand(id kernel.UUID, name string) (*Brand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Brand{
		id:            id,
		createdAt:     time.Now().UTC(),
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreBrand rehydrates a brand from persistence.
func RestoreBrand(id kernel.UUID, createdAt time.Time, isDeleted bool, name string) (*Brand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Brand{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Brand was created through a constructor.
func (b *Brand) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBrandIsNotConstructed
	}
	return nil
}

// ID returns the brand's unique identifier.
func (b *Brand) ID() kernel.UUID { return b.id }

// CreatedAt returns the construction timestamp.
func (b *Brand) CreatedAt() time.Time { return b.createdAt }

// IsDeleted returns the soft-delete flag.
func (b *Brand) IsDeleted() bool { return b.isDeleted }

// Name returns the brand name.
func (b *Brand) Name() string { return b.name }
