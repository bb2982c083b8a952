package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// CompleteDeliveryCommandHandler closes an order as delivered.
// Only the assigned deliverer may complete the delivery; the order then
// becomes part of the user's archive.
type CompleteDeliveryCommandHandler struct {
	orders ports.CustomerOrderRepository
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completions.
func NewCompleteDeliveryCommandHandler(orders ports.CustomerOrderRepository) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{orders: orders}
}

// Handle transitions the order from IN_TRANSIT to DELIVERED.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	order, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := order.CompleteDelivery(command.DelivererID()); err != nil {
		return err
	}

	return h.orders.Update(ctx, order)
}
