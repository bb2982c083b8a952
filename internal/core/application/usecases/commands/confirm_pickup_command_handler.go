package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// ConfirmPickupCommandHandler moves a claimed order into transit.
// Only the assigned deliverer may confirm the pickup.
type ConfirmPickupCommandHandler struct {
	orders ports.CustomerOrderRepository
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmations.
func NewConfirmPickupCommandHandler(orders ports.CustomerOrderRepository) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{orders: orders}
}

// Handle transitions the order from YOUR_ORDER_RECEIVED to IN_TRANSIT.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, command ConfirmPickupCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	order, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := order.ConfirmPickup(command.DelivererID()); err != nil {
		return err
	}

	return h.orders.Update(ctx, order)
}
