package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/ports"
)

var (
	ErrCartIsEmpty     = errors.New("cart has no lines to confirm")
	ErrAddressNotOwned = errors.New("address does not belong to the user")
)

// ConfirmOrderCommandHandler promotes an open cart into the delivery
// workflow. The order total is the sum of every line total in the cart,
// computed at confirmation time.
type ConfirmOrderCommandHandler struct {
	orders    ports.CustomerOrderRepository
	lines     ports.LineItemRepository
	addresses ports.AddressRepository
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	orders ports.CustomerOrderRepository,
	lines ports.LineItemRepository,
	addresses ports.AddressRepository,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		orders:    orders,
		lines:     lines,
		addresses: addresses,
	}
}

// Handle processes the confirmation.
// Verifies the address belongs to the confirming user, sums the line totals
// into the order price, and transitions the order to LOOKING_FOR_A_DELIVERER.
// An empty cart cannot be confirmed.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	open, err := h.orders.GetOpenByUser(ctx, command.UserID())
	if err != nil {
		return err
	}

	address, err := h.addresses.Get(ctx, command.AddressID())
	if err != nil {
		return err
	}
	if !address.BelongsTo(command.UserID()) {
		return ErrAddressNotOwned
	}

	cartLines, err := h.lines.GetAllByOrder(ctx, open.ID())
	if err != nil {
		return err
	}
	if len(cartLines) == 0 {
		return ErrCartIsEmpty
	}

	total := cartLines[0].Price()
	for _, line := range cartLines[1:] {
		total = total.Add(line.Price())
	}

	if err := open.Confirm(command.AddressID(), command.PaymentType(), total); err != nil {
		return err
	}

	return h.orders.Update(ctx, open)
}
