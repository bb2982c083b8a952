package cartrepo

import (
	"context"
	"errors"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// DescriptionID extracts the identifier of a stored description record.
func DescriptionID(dto DescriptionDTO) uuid.UUID {
	return dto.ID
}

// DescriptionRepository implements DescriptionRepository on a JSON file
// collection.
type DescriptionRepository struct {
	descriptions *jsonstore.Collection[DescriptionDTO]
}

// NewDescriptionRepository creates a description repository over the given
// collection.
func NewDescriptionRepository(descriptions *jsonstore.Collection[DescriptionDTO]) *DescriptionRepository {
	return &DescriptionRepository{descriptions: descriptions}
}

// Add saves a new description.
func (r *DescriptionRepository) Add(ctx context.Context, description *cart.Description) error {
	if err := description.Validate(); err != nil {
		return err
	}
	return r.descriptions.Add(ctx, descriptionFromDomain(description))
}

// Get retrieves a description by ID.
func (r *DescriptionRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Description, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.descriptions.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("description", id.String())
		}
		return nil, err
	}
	return descriptionToDomain(dto)
}
