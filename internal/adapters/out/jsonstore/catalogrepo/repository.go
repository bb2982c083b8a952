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

// BrandRepository implements BrandRepository on a JSON file collection.
type BrandRepository struct {
	brands *jsonstore.Collection[BrandDTO]
}

// NewBrandRepository creates a brand repository over the given collection.
func NewBrandRepository(brands *jsonstore.Collection[BrandDTO]) *BrandRepository {
	return &BrandRepository{brands: brands}
}

// Add saves a new brand.
func (r *BrandRepository) Add(ctx context.Context, brand *catalog.Brand) error {
	if err := brand.Validate(); err != nil {
		return err
	}
	return r.brands.Add(ctx, brandFromDomain(brand))
}

// Update saves an existing brand.
func (r *BrandRepository) Update(ctx context.Context, brand *catalog.Brand) error {
	if err := brand.Validate(); err != nil {
		return err
	}

	if err := r.brands.Update(ctx, brandFromDomain(brand)); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundError("brand", brand.ID().String())
		}
		return err
	}
	return nil
}

// Get retrieves a brand by ID.
func (r *BrandRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Brand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.brands.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("brand", id.String())
		}
		return nil, err
	}
	return brandToDomain(dto)
}

// GetAll retrieves every brand.
func (r *BrandRepository) GetAll(ctx context.Context) ([]*catalog.Brand, error) {
	dtos, err := r.brands.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	brands := make([]*catalog.Brand, 0, len(dtos))
	for _, dto := range dtos {
		b, mapErr := brandToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		brands = append(brands, b)
	}
	return brands, nil
}

// Search retrieves brands whose name contains the text, case-insensitively.
func (r *BrandRepository) Search(ctx context.Context, text string) ([]*catalog.Brand, error) {
	needle := strings.ToLower(text)
	dtos, err := r.brands.FindAll(ctx, func(d BrandDTO) bool {
		return strings.Contains(strings.ToLower(d.Name), needle)
	})
	if err != nil {
		return nil, err
	}

	brands := make([]*catalog.Brand, 0, len(dtos))
	for _, dto := range dtos {
		b, mapErr := brandToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		brands = append(brands, b)
	}
	return brands, nil
}

// BranchRepository implements BranchRepository on a JSON file collection.
type BranchRepository struct {
	branches *jsonstore.Collection[BranchDTO]
}

// NewBranchRepository creates a branch repository over the given collection.
func NewBranchRepository(branches *jsonstore.Collection[BranchDTO]) *BranchRepository {
	return &BranchRepository{branches: branches}
}

// Add saves a new branch.
func (r *BranchRepository) Add(ctx context.Context, branch *catalog.Branch) error {
	if err := branch.Validate(); err != nil {
		return err
	}
	return r.branches.Add(ctx, branchFromDomain(branch))
}

// Get retrieves a branch by ID.
func (r *BranchRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.branches.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id.String())
		}
		return nil, err
	}
	return branchToDomain(dto)
}

// GetAllByBrand retrieves every branch of a brand.
func (r *BranchRepository) GetAllByBrand(ctx context.Context, brandID kernel.UUID) ([]*catalog.Branch, error) {
	if err := brandID.Validate(); err != nil {
		return nil, err
	}

	raw := brandID.Bytes()
	dtos, err := r.branches.FindAll(ctx, func(d BranchDTO) bool {
		return d.BrandID == raw
	})
	if err != nil {
		return nil, err
	}

	branches := make([]*catalog.Branch, 0, len(dtos))
	for _, dto := range dtos {
		b, mapErr := branchToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// CategoryRepository implements CategoryRepository on a JSON file collection.
type CategoryRepository struct {
	categories *jsonstore.Collection[CategoryDTO]
}

// NewCategoryRepository creates a category repository over the given
// collection.
func NewCategoryRepository(categories *jsonstore.Collection[CategoryDTO]) *CategoryRepository {
	return &CategoryRepository{categories: categories}
}

// Add saves a new category.
func (r *CategoryRepository) Add(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return r.categories.Add(ctx, categoryFromDomain(category))
}

// Get retrieves a category by ID.
func (r *CategoryRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.categories.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}
	return categoryToDomain(dto)
}

// GetAll retrieves every category.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*catalog.Category, error) {
	dtos, err := r.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]*catalog.Category, 0, len(dtos))
	for _, dto := range dtos {
		c, mapErr := categoryToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		categories = append(categories, c)
	}
	return categories, nil
}
