package catalog

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrFoodBrandMappingIsNotConstructed is returned when a FoodBrandMapping was
// not created through NewFoodBrandMapping or RestoreFoodBrandMapping.
var ErrFoodBrandMappingIsNotConstructed = errors.New(
	"FoodBrandMapping must be created via NewFoodBrandMapping or RestoreFoodBrandMapping")

// FoodBrandMapping ties a food to a brand under a category name.
// It is the only path from Food to Brand, and the cart aggregation relies on
// it to decide whether an added food belongs to the open cart's brand.
type FoodBrandMapping struct {
	id           kernel.UUID
	createdAt    time.Time
	isDeleted    bool
	foodID       kernel.UUID
	brandID      kernel.UUID
	categoryName string

	isConstructed bool
}

// NewFoodBrandMapping creates a mapping between a food and a brand.
func NewFoodBrandMapping(id, foodID, brandID kernel.UUID, categoryName string) (*FoodBrandMapping, error) {
	if err := errors.Join(id.Validate(), foodID.Validate(), brandID.Validate()); err != nil {
		return nil, err
	}
	if categoryName == "" {
		return nil, errs.NewValueIsRequiredError("categoryName")
	}

	return &FoodBrandMapping{
		id:            id,
		createdAt:     time.Now().UTC(),
		foodID:        foodID,
		brandID:       brandID,
		categoryName:  categoryName,
		isConstructed: true,
	}, nil
}

// RestoreFoodBrandMapping rehydrates a mapping from persistence.
func RestoreFoodBrandMapping(
	id kernel.UUID,
	createdAt time.Time,
	isDeleted bool,
	foodID, brandID kernel.UUID,
	categoryName string,
) (*FoodBrandMapping, error) {
	if err := errors.Join(id.Validate(), foodID.Validate(), brandID.Validate()); err != nil {
		return nil, err
	}
	if categoryName == "" {
		return nil, errs.NewValueIsRequiredError("categoryName")
	}

	return &FoodBrandMapping{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		foodID:        foodID,
		brandID:       brandID,
		categoryName:  categoryName,
		isConstructed: true,
	}, nil
}

// Validate ensures the FoodBrandMapping was created through a constructor.
func (m *FoodBrandMapping) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrFoodBrandMappingIsNotConstructed
	}
	return nil
}

// ID returns the mapping's unique identifier.
func (m *FoodBrandMapping) ID() kernel.UUID { return m.id }

// CreatedAt returns the construction timestamp.
func (m *FoodBrandMapping) CreatedAt() time.Time { return m.createdAt }

// IsDeleted returns the soft-delete flag.
func (m *FoodBrandMapping) IsDeleted() bool { return m.isDeleted }

// FoodID returns the mapped food's identifier.
func (m *FoodBrandMapping) FoodID() kernel.UUID { return m.foodID }

// BrandID returns the owning brand's identifier.
func (m *FoodBrandMapping) BrandID() kernel.UUID { return m.brandID }

// CategoryName returns the menu category the food is listed under.
func (m *FoodBrandMapping) CategoryName() string { return m.categoryName }
