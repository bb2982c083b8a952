package commands

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// FailDeliveryCommandHandler records a failed delivery.
// The reason is persisted as its own Description entity first, then linked
// from the order while it transitions to FAILED_DELIVERY. Only the assigned
// deliverer may fail the delivery.
type FailDeliveryCommandHandler struct {
	orders       ports.CustomerOrderRepository
	descriptions ports.DescriptionRepository
}

// NewFailDeliveryCommandHandler creates a handler for delivery failures.
func NewFailDeliveryCommandHandler(
	orders ports.CustomerOrderRepository,
	descriptions ports.DescriptionRepository,
) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		orders:       orders,
		descriptions: descriptions,
	}
}

// Handle transitions the order from YOUR_ORDER_RECEIVED or IN_TRANSIT to
// FAILED_DELIVERY with the persisted reason linked.
func (h FailDeliveryCommandHandler) Handle(ctx context.Context, command FailDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	order, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	description, err := cart.NewDescription(kernel.NewUUID(), command.Reason())
	if err != nil {
		return err
	}
	if err := h.descriptions.Add(ctx, description); err != nil {
		return err
	}

	if err := order.FailDelivery(command.DelivererID(), description.ID()); err != nil {
		return err
	}

	return h.orders.Update(ctx, order)
}
