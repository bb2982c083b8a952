package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// ClearCartCommandHandler discards a user's open cart and its lines.
// Confirmed orders are untouched; only the NOT_CONFIRMED cart is removable.
type ClearCartCommandHandler struct {
	orders ports.CustomerOrderRepository
	lines  ports.LineItemRepository
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(
	orders ports.CustomerOrderRepository,
	lines ports.LineItemRepository,
) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		orders: orders,
		lines:  lines,
	}
}

// Handle removes the user's open cart together with every line in it.
// Returns an error unwrapping to errs.ErrObjectNotFound when the user has no
// open cart.
func (h ClearCartCommandHandler) Handle(ctx context.Context, command ClearCartCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	open, err := h.orders.GetOpenByUser(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err := h.lines.RemoveAllByOrder(ctx, open.ID()); err != nil {
		return err
	}

	return h.orders.RemoveByID(ctx, open.ID())
}
