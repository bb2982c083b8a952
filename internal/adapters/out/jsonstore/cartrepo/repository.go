package cartrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// CustomerOrderID extracts the identifier of a stored customer order record.
// Collections over CustomerOrderDTO are keyed by it.
func CustomerOrderID(dto CustomerOrderDTO) uuid.UUID {
	return dto.ID
}

// Repository implements CustomerOrderRepository on a JSON file collection.
type Repository struct {
	orders *jsonstore.Collection[CustomerOrderDTO]
}

// NewRepository creates a customer order repository over the given collection.
func NewRepository(orders *jsonstore.Collection[CustomerOrderDTO]) *Repository {
	return &Repository{orders: orders}
}

// Add saves a new customer order.
func (r *Repository) Add(ctx context.Context, aggregate *cart.CustomerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.orders.Add(ctx, fromDomain(aggregate))
}

// Update saves an existing customer order.
func (r *Repository) Update(ctx context.Context, aggregate *cart.CustomerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.orders.Update(ctx, fromDomain(aggregate)); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundError("customerOrder", aggregate.ID().String())
		}
		return err
	}
	return nil
}

// RemoveByID removes a customer order from the store.
func (r *Repository) RemoveByID(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.orders.RemoveByID(ctx, id.Bytes()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundError("customerOrder", id.String())
		}
		return err
	}
	return nil
}

// Get retrieves a customer order by ID.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*cart.CustomerOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.orders.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("customerOrder", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetOpenByUser retrieves the user's open cart, the single order still in
// NOT_CONFIRMED status.
func (r *Repository) GetOpenByUser(ctx context.Context, userID kernel.UUID) (*cart.CustomerOrder, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	raw := userID.Bytes()
	dto, err := r.orders.FindFirst(ctx, func(d CustomerOrderDTO) bool {
		return d.UserID == raw && d.OrderStatus == cart.NotConfirmed.String()
	})
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("openCart", userID.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetAllPending retrieves the claimable pool in creation order.
func (r *Repository) GetAllPending(ctx context.Context) ([]*cart.CustomerOrder, error) {
	dtos, err := r.orders.FindAll(ctx, isPending)
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// GetFirstPending retrieves the oldest claimable order.
func (r *Repository) GetFirstPending(ctx context.Context) (*cart.CustomerOrder, error) {
	dto, err := r.orders.FindFirst(ctx, isPending)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("customerOrder", "first pending")
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetInProcessByUser retrieves the user's confirmed but unresolved orders.
func (r *Repository) GetInProcessByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CustomerOrder, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	raw := userID.Bytes()
	dtos, err := r.orders.FindAll(ctx, func(d CustomerOrderDTO) bool {
		status, statusErr := cart.StatusFromString(d.OrderStatus)
		return statusErr == nil && status.IsInProcess() && d.UserID == raw
	})
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// GetInProcessByDeliverer retrieves the deliverer's active orders.
func (r *Repository) GetInProcessByDeliverer(ctx context.Context, delivererID kernel.UUID) ([]*cart.CustomerOrder, error) {
	if err := delivererID.Validate(); err != nil {
		return nil, err
	}

	raw := delivererID.Bytes()
	dtos, err := r.orders.FindAll(ctx, func(d CustomerOrderDTO) bool {
		if d.DelivererID == nil || *d.DelivererID != raw {
			return false
		}
		return d.OrderStatus == cart.OrderReceived.String() ||
			d.OrderStatus == cart.InTransit.String()
	})
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// GetArchiveByUser retrieves the user's delivered orders.
func (r *Repository) GetArchiveByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CustomerOrder, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	raw := userID.Bytes()
	dtos, err := r.orders.FindAll(ctx, func(d CustomerOrderDTO) bool {
		return d.UserID == raw && d.OrderStatus == cart.Delivered.String()
	})
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// GetStaleOpen retrieves open carts created before the cutoff.
func (r *Repository) GetStaleOpen(ctx context.Context, cutoff time.Time) ([]*cart.CustomerOrder, error) {
	dtos, err := r.orders.FindAll(ctx, func(d CustomerOrderDTO) bool {
		return d.OrderStatus == cart.NotConfirmed.String() && d.CreatedAt.Before(cutoff)
	})
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// Claim atomically assigns the order to the deliverer. The whole
// read-check-write runs inside Collection.Mutate, so two deliverers racing
// for the same order serialize on the collection lock and the loser gets the
// conflict from the aggregate's Claim.
func (r *Repository) Claim(ctx context.Context, orderID, delivererID kernel.UUID) (*cart.CustomerOrder, error) {
	if err := errors.Join(orderID.Validate(), delivererID.Validate()); err != nil {
		return nil, err
	}

	var claimed *cart.CustomerOrder
	_, err := r.orders.Mutate(ctx, orderID.Bytes(), func(d CustomerOrderDTO) (CustomerOrderDTO, error) {
		order, mapErr := toDomain(d)
		if mapErr != nil {
			return d, mapErr
		}
		if claimErr := order.Claim(delivererID); claimErr != nil {
			return d, claimErr
		}
		claimed = order
		return fromDomain(order), nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("customerOrder", orderID.String())
		}
		return nil, err
	}
	return claimed, nil
}

func isPending(d CustomerOrderDTO) bool {
	return d.OrderStatus == cart.LookingForDeliverer.String() && d.DelivererID == nil
}

func toDomainAll(dtos []CustomerOrderDTO) ([]*cart.CustomerOrder, error) {
	orders := make([]*cart.CustomerOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
