package commands

import (
	"context"
	"time"

	"foodorder/internal/core/ports"
)

// PurgeStaleCartsCommandHandler removes abandoned open carts together with
// their lines. Confirmed orders are never touched.
type PurgeStaleCartsCommandHandler struct {
	orders ports.CustomerOrderRepository
	lines  ports.LineItemRepository
}

// NewPurgeStaleCartsCommandHandler creates a handler for stale cart purges.
func NewPurgeStaleCartsCommandHandler(
	orders ports.CustomerOrderRepository,
	lines ports.LineItemRepository,
) PurgeStaleCartsCommandHandler {
	return PurgeStaleCartsCommandHandler{
		orders: orders,
		lines:  lines,
	}
}

// Handle removes every NOT_CONFIRMED cart created before now minus the TTL.
// Returns the number of purged carts.
func (h PurgeStaleCartsCommandHandler) Handle(ctx context.Context, command PurgeStaleCartsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-command.TTL())
	stale, err := h.orders.GetStaleOpen(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, open := range stale {
		if err := h.lines.RemoveAllByOrder(ctx, open.ID()); err != nil {
			return 0, err
		}
		if err := h.orders.RemoveByID(ctx, open.ID()); err != nil {
			return 0, err
		}
	}

	return len(stale), nil
}
