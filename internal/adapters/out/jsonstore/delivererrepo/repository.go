package delivererrepo

import (
	"context"
	"errors"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Repository implements DelivererRepository on a JSON file collection.
type Repository struct {
	deliverers *jsonstore.Collection[DelivererDTO]
}

// NewRepository creates a deliverer repository over the given collection.
func NewRepository(deliverers *jsonstore.Collection[DelivererDTO]) *Repository {
	return &Repository{deliverers: deliverers}
}

// Add saves a new deliverer.
func (r *Repository) Add(ctx context.Context, d *deliverer.Deliverer) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return r.deliverers.Add(ctx, delivererFromDomain(d))
}

// Get retrieves a deliverer by ID.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.deliverers.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("deliverer", id.String())
		}
		return nil, err
	}
	return delivererToDomain(dto)
}

// GetAll retrieves every deliverer.
func (r *Repository) GetAll(ctx context.Context) ([]*deliverer.Deliverer, error) {
	dtos, err := r.deliverers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	deliverers := make([]*deliverer.Deliverer, 0, len(dtos))
	for _, dto := range dtos {
		d, mapErr := delivererToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		deliverers = append(deliverers, d)
	}
	return deliverers, nil
}

// TransportRepository implements TransportRepository on a JSON file
// collection.
type TransportRepository struct {
	transports *jsonstore.Collection[TransportDTO]
}

// NewTransportRepository creates a transport repository over the given
// collection.
func NewTransportRepository(transports *jsonstore.Collection[TransportDTO]) *TransportRepository {
	return &TransportRepository{transports: transports}
}

// Add saves a new transport.
func (r *TransportRepository) Add(ctx context.Context, t *deliverer.Transport) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return r.transports.Add(ctx, transportFromDomain(t))
}

// Get retrieves a transport by ID.
func (r *TransportRepository) Get(ctx context.Context, id kernel.UUID) (*deliverer.Transport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.transports.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("transport", id.String())
		}
		return nil, err
	}
	return transportToDomain(dto)
}

// GetAll retrieves every transport.
func (r *TransportRepository) GetAll(ctx context.Context) ([]*deliverer.Transport, error) {
	dtos, err := r.transports.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	transports := make([]*deliverer.Transport, 0, len(dtos))
	for _, dto := range dtos {
		t, mapErr := transportToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		transports = append(transports, t)
	}
	return transports, nil
}
