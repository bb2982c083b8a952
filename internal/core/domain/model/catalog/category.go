package catalog

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category was not created
// through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// Category is a menu section name, e.g. "soups" or "drinks".
type Category struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	name      string

	isConstructed bool
}

// NewCategory creates a category with the given name.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Category{
		id:            id,
		createdAt:     time.Now().UTC(),
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreCategory rehydrates a category from persistence.
func RestoreCategory(id kernel.UUID, createdAt time.Time, isDeleted bool, name string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Category{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Category was created through a constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID { return c.id }

// CreatedAt returns the construction timestamp.
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// IsDeleted returns the soft-delete flag.
func (c *Category) IsDeleted() bool { return c.isDeleted }

// Name returns the category name.
func (c *Category) Name() string { return c.name }
