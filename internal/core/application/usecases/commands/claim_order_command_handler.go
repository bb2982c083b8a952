package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/ports"
)

var ErrDelivererIsBusy = errors.New("deliverer already has an active order")

// ClaimOrderCommandHandler assigns a pending order to a deliverer.
//
// A deliverer carries at most one active order at a time, so the handler
// rejects a claim while any order of theirs is in YOUR_ORDER_RECEIVED or
// IN_TRANSIT. The assignment itself goes through the repository's atomic
// Claim, so two deliverers racing for the same order cannot both win: the
// loser gets an error unwrapping to errs.ErrConflict.
type ClaimOrderCommandHandler struct {
	orders     ports.CustomerOrderRepository
	deliverers ports.DelivererRepository
}

// NewClaimOrderCommandHandler creates a handler for order claims.
func NewClaimOrderCommandHandler(
	orders ports.CustomerOrderRepository,
	deliverers ports.DelivererRepository,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		orders:     orders,
		deliverers: deliverers,
	}
}

// Handle processes the claim.
// Verifies the deliverer exists and is free, then performs the atomic
// assignment. Returns ErrDelivererIsBusy when the deliverer already has an
// active order.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.deliverers.Get(ctx, command.DelivererID()); err != nil {
		return err
	}

	active, err := h.orders.GetInProcessByDeliverer(ctx, command.DelivererID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return ErrDelivererIsBusy
	}

	_, err = h.orders.Claim(ctx, command.OrderID(), command.DelivererID())
	return err
}
