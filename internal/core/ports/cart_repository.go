// Package ports defines repository interfaces for the food-ordering domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability. The
// composition root hands concrete implementations to the use-case handlers;
// nothing in the core reaches for ambient state.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CustomerOrderRepository defines the persistence contract for customer
// order aggregates: open carts and confirmed orders alike.
//
// Lookups that find nothing return an error unwrapping to
// errs.ErrObjectNotFound; list queries return empty slices.
type CustomerOrderRepository interface {
	// Add persists a new customer order.
	Add(ctx context.Context, order *cart.CustomerOrder) error

	// Update replaces the stored order identified by the aggregate's ID.
	Update(ctx context.Context, order *cart.CustomerOrder) error

	// RemoveByID physically removes an order. Only open carts are ever
	// removed; confirmed orders travel the status machine instead.
	RemoveByID(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.CustomerOrder, error)

	// GetOpenByUser retrieves the user's open cart: the single order in
	// NOT_CONFIRMED status, if any.
	GetOpenByUser(ctx context.Context, userID kernel.UUID) (*cart.CustomerOrder, error)

	// GetAllPending retrieves the claimable pool: orders in
	// LOOKING_FOR_A_DELIVERER status with no deliverer assigned.
	GetAllPending(ctx context.Context) ([]*cart.CustomerOrder, error)

	// GetFirstPending retrieves the oldest order of the claimable pool.
	GetFirstPending(ctx context.Context) (*cart.CustomerOrder, error)

	// GetInProcessByUser retrieves the user's confirmed but unresolved
	// orders: waiting, claimed, or in transit.
	GetInProcessByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CustomerOrder, error)

	// GetInProcessByDeliverer retrieves the deliverer's active orders:
	// YOUR_ORDER_RECEIVED or IN_TRANSIT.
	GetInProcessByDeliverer(ctx context.Context, delivererID kernel.UUID) ([]*cart.CustomerOrder, error)

	// GetArchiveByUser retrieves the user's delivered orders.
	GetArchiveByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CustomerOrder, error)

	// GetStaleOpen retrieves open carts created before the given cutoff.
	GetStaleOpen(ctx context.Context, cutoff time.Time) ([]*cart.CustomerOrder, error)

	// Claim atomically assigns the order to the deliverer: within a single
	// guarded read-check-write it verifies the order is still unclaimed and
	// waiting, applies the claim, and persists. A lost race returns an error
	// unwrapping to errs.ErrConflict.
	Claim(ctx context.Context, orderID, delivererID kernel.UUID) (*cart.CustomerOrder, error)
}

// LineItemRepository defines the persistence contract for cart line items.
type LineItemRepository interface {
	// Add persists a new line item.
	Add(ctx context.Context, line *cart.LineItem) error

	// Update replaces the stored line identified by the aggregate's ID.
	Update(ctx context.Context, line *cart.LineItem) error

	// Get retrieves a line item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.LineItem, error)

	// GetAllByOrder retrieves every line belonging to a customer order.
	GetAllByOrder(ctx context.Context, customerOrderID kernel.UUID) ([]*cart.LineItem, error)

	// GetByOrderAndFood retrieves the single line a customer order holds for
	// a food, if any. Within one order at most one line exists per food.
	GetByOrderAndFood(ctx context.Context, customerOrderID, foodID kernel.UUID) (*cart.LineItem, error)

	// RemoveAllByOrder removes every line belonging to a customer order.
	// Used when a cart is cleared or invalidated by a brand switch.
	RemoveAllByOrder(ctx context.Context, customerOrderID kernel.UUID) error
}

// DescriptionRepository defines the persistence contract for free-text
// failure reasons.
type DescriptionRepository interface {
	// Add persists a new description.
	Add(ctx context.Context, description *cart.Description) error

	// Get retrieves a description by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Description, error)
}
