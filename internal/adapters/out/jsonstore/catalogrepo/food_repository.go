package catalogrepo

import (
	"context"
	"errors"
	"strings"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// FoodRepository implements FoodRepository on a JSON file collection.
type FoodRepository struct {
	foods *jsonstore.Collection[FoodDTO]
}

// NewFoodRepository creates a food repository over the given collection.
func NewFoodRepository(foods *jsonstore.Collection[FoodDTO]) *FoodRepository {
	return &FoodRepository{foods: foods}
}

// Add saves a new food.
func (r *FoodRepository) Add(ctx context.Context, food *catalog.Food) error {
	if err := food.Validate(); err != nil {
		return err
	}
	return r.foods.Add(ctx, foodFromDomain(food))
}

// Update saves an existing food.
func (r *FoodRepository) Update(ctx context.Context, food *catalog.Food) error {
	if err := food.Validate(); err != nil {
		return err
	}

	if err := r.foods.Update(ctx, foodFromDomain(food)); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundError("food", food.ID().String())
		}
		return err
	}
	return nil
}

// Get retrieves a food by ID.
func (r *FoodRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.foods.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id.String())
		}
		return nil, err
	}
	return foodToDomain(dto)
}

// GetAll retrieves every food.
func (r *FoodRepository) GetAll(ctx context.Context) ([]*catalog.Food, error) {
	dtos, err := r.foods.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return foodsToDomain(dtos)
}

// Search retrieves foods whose name contains the text, case-insensitively.
func (r *FoodRepository) Search(ctx context.Context, text string) ([]*catalog.Food, error) {
	needle := strings.ToLower(text)
	dtos, err := r.foods.FindAll(ctx, func(d FoodDTO) bool {
		return strings.Contains(strings.ToLower(d.Name), needle)
	})
	if err != nil {
		return nil, err
	}
	return foodsToDomain(dtos)
}

func foodsToDomain(dtos []FoodDTO) ([]*catalog.Food, error) {
	foods := make([]*catalog.Food, 0, len(dtos))
	for _, dto := range dtos {
		f, err := foodToDomain(dto)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, nil
}

// MappingRepository implements FoodBrandMappingRepository on a JSON file
// collection.
type MappingRepository struct {
	mappings *jsonstore.Collection[FoodBrandMappingDTO]
}

// NewMappingRepository creates a menu mapping repository over the given
// collection.
func NewMappingRepository(mappings *jsonstore.Collection[FoodBrandMappingDTO]) *MappingRepository {
	return &MappingRepository{mappings: mappings}
}

// Add saves a new mapping.
func (r *MappingRepository) Add(ctx context.Context, mapping *catalog.FoodBrandMapping) error {
	if err := mapping.Validate(); err != nil {
		return err
	}
	return r.mappings.Add(ctx, mappingFromDomain(mapping))
}

// GetByFood retrieves the mapping of a food.
func (r *MappingRepository) GetByFood(ctx context.Context, foodID kernel.UUID) (*catalog.FoodBrandMapping, error) {
	if err := foodID.Validate(); err != nil {
		return nil, err
	}

	raw := foodID.Bytes()
	dto, err := r.mappings.FindFirst(ctx, func(d FoodBrandMappingDTO) bool {
		return d.FoodID == raw
	})
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("foodBrandMapping", foodID.String())
		}
		return nil, err
	}
	return mappingToDomain(dto)
}

// GetAllByBrand retrieves every mapping of a brand's menu.
func (r *MappingRepository) GetAllByBrand(ctx context.Context, brandID kernel.UUID) ([]*catalog.FoodBrandMapping, error) {
	if err := brandID.Validate(); err != nil {
		return nil, err
	}

	raw := brandID.Bytes()
	dtos, err := r.mappings.FindAll(ctx, func(d FoodBrandMappingDTO) bool {
		return d.BrandID == raw
	})
	if err != nil {
		return nil, err
	}

	mappings := make([]*catalog.FoodBrandMapping, 0, len(dtos))
	for _, dto := range dtos {
		m, mapErr := mappingToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}
