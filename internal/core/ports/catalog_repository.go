package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
)

// BrandRepository defines the persistence contract for restaurant brands.
type BrandRepository interface {
	// Add persists a new brand.
	Add(ctx context.Context, brand *catalog.Brand) error

	// Update replaces the stored brand identified by the aggregate's ID.
	Update(ctx context.Context, brand *catalog.Brand) error

	// Get retrieves a brand by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Brand, error)

	// GetAll retrieves every brand.
	GetAll(ctx context.Context) ([]*catalog.Brand, error)

	// Search retrieves brands whose name contains the given text,
	// case-insensitively.
	Search(ctx context.Context, text string) ([]*catalog.Brand, error)
}

// BranchRepository defines the persistence contract for brand branches.
type BranchRepository interface {
	// Add persists a new branch.
	Add(ctx context.Context, branch *catalog.Branch) error

	// Get retrieves a branch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Branch, error)

	// GetAllByBrand retrieves every branch of a brand.
	GetAllByBrand(ctx context.Context, brandID kernel.UUID) ([]*catalog.Branch, error)
}

// CategoryRepository defines the persistence contract for food categories.
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, category *catalog.Category) error

	// Get retrieves a category by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// GetAll retrieves every category.
	GetAll(ctx context.Context) ([]*catalog.Category, error)
}

// FoodRepository defines the persistence contract for food products.
type FoodRepository interface {
	// Add persists a new food.
	Add(ctx context.Context, food *catalog.Food) error

	// Update replaces the stored food identified by the aggregate's ID.
	Update(ctx context.Context, food *catalog.Food) error

	// Get retrieves a food by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Food, error)

	// GetAll retrieves every food.
	GetAll(ctx context.Context) ([]*catalog.Food, error)

	// Search retrieves foods whose name contains the given text,
	// case-insensitively.
	Search(ctx context.Context, text string) ([]*catalog.Food, error)
}

// FoodBrandMappingRepository defines the persistence contract for the
// food-to-brand menu links.
type FoodBrandMappingRepository interface {
	// Add persists a new mapping.
	Add(ctx context.Context, mapping *catalog.FoodBrandMapping) error

	// GetByFood retrieves the mapping of a food. Each food belongs to
	// exactly one brand's menu.
	GetByFood(ctx context.Context, foodID kernel.UUID) (*catalog.FoodBrandMapping, error)

	// GetAllByBrand retrieves every mapping of a brand's menu.
	GetAllByBrand(ctx context.Context, brandID kernel.UUID) ([]*catalog.FoodBrandMapping, error)
}
