package catalog

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrFoodIsNotConstructed is returned when a Food was not created through
// NewFood or RestoreFood.
var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood or RestoreFood")

// Food is a menu item with a current unit price. The price stored here is
// always the source of truth: cart lines are repriced from it on every merge
// so that stale line totals never compound.
type Food struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	name      string
	price     kernel.Price

	isConstructed bool
}

// NewFood creates a food item with the given name and unit price.
func NewFood(id kernel.UUID, name string, price kernel.Price) (*Food, error) {
	if err := errors.Join(id.Validate(), price.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Food{
		id:            id,
		createdAt:     time.Now().UTC(),
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreFood rehydrates a food item from persistence.
func RestoreFood(id kernel.UUID, createdAt time.Time, isDeleted bool, name string, price kernel.Price) (*Food, error) {
	if err := errors.Join(id.Validate(), price.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Food{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the Food was created through a constructor.
func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

// ChangePrice replaces the current unit price.
func (f *Food) ChangePrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	f.price = price
	return nil
}

// ID returns the food's unique identifier.
func (f *Food) ID() kernel.UUID { return f.id }

// CreatedAt returns the construction timestamp.
func (f *Food) CreatedAt() time.Time { return f.createdAt }

// IsDeleted returns the soft-delete flag.
func (f *Food) IsDeleted() bool { return f.isDeleted }

// Name returns the food name.
func (f *Food) Name() string { return f.name }

// Price returns the current unit price.
func (f *Food) Price() kernel.Price { return f.price }
