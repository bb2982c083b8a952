// Package catalogrepo persists the catalog aggregates in JSON file
// collections: brands, branches, categories, foods, and the food-to-brand
// menu mappings. Each aggregate lives in its own file.
package catalogrepo

import (
	"time"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BrandDTO is the stored shape of a brand record.
type BrandDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	Name      string    `json:"name"`
}

// BranchDTO is the stored shape of a branch record.
type BranchDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	BrandID   uuid.UUID `json:"brand_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
}

// CategoryDTO is the stored shape of a category record.
type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	Name      string    `json:"name"`
}

// FoodDTO is the stored shape of a food record. The price is the unit price
// as a decimal string.
type FoodDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
}

// FoodBrandMappingDTO is the stored shape of a menu mapping record.
type FoodBrandMappingDTO struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	IsDeleted    bool      `json:"is_deleted"`
	FoodID       uuid.UUID `json:"food_id"`
	BrandID      uuid.UUID `json:"brand_id"`
	CategoryName string    `json:"category_name"`
}

// BrandID extracts the identifier of a stored brand record.
func BrandID(dto BrandDTO) uuid.UUID { return dto.ID }

// BranchID extracts the identifier of a stored branch record.
func BranchID(dto BranchDTO) uuid.UUID { return dto.ID }

// CategoryID extracts the identifier of a stored category record.
func CategoryID(dto CategoryDTO) uuid.UUID { return dto.ID }

// FoodID extracts the identifier of a stored food record.
func FoodID(dto FoodDTO) uuid.UUID { return dto.ID }

// MappingID extracts the identifier of a stored menu mapping record.
func MappingID(dto FoodBrandMappingDTO) uuid.UUID { return dto.ID }

func brandFromDomain(b *catalog.Brand) BrandDTO {
	return BrandDTO{
		ID:        b.ID().Bytes(),
		CreatedAt: b.CreatedAt(),
		IsDeleted: b.IsDeleted(),
		Name:      b.Name(),
	}
}

func brandToDomain(dto BrandDTO) (*catalog.Brand, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreBrand(id, dto.CreatedAt, dto.IsDeleted, dto.Name)
}

func branchFromDomain(b *catalog.Branch) BranchDTO {
	return BranchDTO{
		ID:        b.ID().Bytes(),
		CreatedAt: b.CreatedAt(),
		IsDeleted: b.IsDeleted(),
		BrandID:   b.BrandID().Bytes(),
		Name:      b.Name(),
		Address:   b.Address(),
	}
}

func branchToDomain(dto BranchDTO) (*catalog.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	brandID, err := kernel.UUIDFromBytes(dto.BrandID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreBranch(id, dto.CreatedAt, dto.IsDeleted, brandID, dto.Name, dto.Address)
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID().Bytes(),
		CreatedAt: c.CreatedAt(),
		IsDeleted: c.IsDeleted(),
		Name:      c.Name(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreCategory(id, dto.CreatedAt, dto.IsDeleted, dto.Name)
}

func foodFromDomain(f *catalog.Food) FoodDTO {
	return FoodDTO{
		ID:        f.ID().Bytes(),
		CreatedAt: f.CreatedAt(),
		IsDeleted: f.IsDeleted(),
		Name:      f.Name(),
		Price:     f.Price().Decimal().String(),
	}
}

func foodToDomain(dto FoodDTO) (*catalog.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.PriceFromString(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreFood(id, dto.CreatedAt, dto.IsDeleted, dto.Name, price)
}

func mappingFromDomain(m *catalog.FoodBrandMapping) FoodBrandMappingDTO {
	return FoodBrandMappingDTO{
		ID:           m.ID().Bytes(),
		CreatedAt:    m.CreatedAt(),
		IsDeleted:    m.IsDeleted(),
		FoodID:       m.FoodID().Bytes(),
		BrandID:      m.BrandID().Bytes(),
		CategoryName: m.CategoryName(),
	}
}

func mappingToDomain(dto FoodBrandMappingDTO) (*catalog.FoodBrandMapping, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	foodID, err := kernel.UUIDFromBytes(dto.FoodID)
	if err != nil {
		return nil, err
	}
	brandID, err := kernel.UUIDFromBytes(dto.BrandID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreFoodBrandMapping(id, dto.CreatedAt, dto.IsDeleted, foodID, brandID, dto.CategoryName)
}
