package itemrepo

import (
	"context"
	"errors"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Repository implements LineItemRepository on a JSON file collection.
type Repository struct {
	lines *jsonstore.Collection[LineItemDTO]
}

// NewRepository creates a line item repository over the given collection.
func NewRepository(lines *jsonstore.Collection[LineItemDTO]) *Repository {
	return &Repository{lines: lines}
}

// Add saves a new line item.
func (r *Repository) Add(ctx context.Context, line *cart.LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}
	return r.lines.Add(ctx, fromDomain(line))
}

// Update saves an existing line item.
func (r *Repository) Update(ctx context.Context, line *cart.LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if err := r.lines.Update(ctx, fromDomain(line)); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundError("lineItem", line.ID().String())
		}
		return err
	}
	return nil
}

// Get retrieves a line item by ID.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*cart.LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.lines.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("lineItem", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetAllByOrder retrieves every line of a customer order in file order.
func (r *Repository) GetAllByOrder(ctx context.Context, customerOrderID kernel.UUID) ([]*cart.LineItem, error) {
	if err := customerOrderID.Validate(); err != nil {
		return nil, err
	}

	raw := customerOrderID.Bytes()
	dtos, err := r.lines.FindAll(ctx, func(d LineItemDTO) bool {
		return d.CustomerOrderID == raw
	})
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		l, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// GetByOrderAndFood retrieves the order's line for a food, if any.
func (r *Repository) GetByOrderAndFood(ctx context.Context, customerOrderID, foodID kernel.UUID) (*cart.LineItem, error) {
	if err := errors.Join(customerOrderID.Validate(), foodID.Validate()); err != nil {
		return nil, err
	}

	rawOrder := customerOrderID.Bytes()
	rawFood := foodID.Bytes()
	dto, err := r.lines.FindFirst(ctx, func(d LineItemDTO) bool {
		return d.CustomerOrderID == rawOrder && d.FoodID == rawFood
	})
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("lineItem", foodID.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// RemoveAllByOrder removes every line of a customer order. An order without
// lines is left as is.
func (r *Repository) RemoveAllByOrder(ctx context.Context, customerOrderID kernel.UUID) error {
	if err := customerOrderID.Validate(); err != nil {
		return err
	}

	raw := customerOrderID.Bytes()
	return r.lines.RemoveAll(ctx, func(d LineItemDTO) bool {
		return d.CustomerOrderID == raw
	})
}
