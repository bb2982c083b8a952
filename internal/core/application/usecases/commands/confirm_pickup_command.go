package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents a deliverer's report that the order left
// the branch with them.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	delivererID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm an order pickup.
func NewConfirmPickupCommand(orderID, delivererID kernel.UUID) (ConfirmPickupCommand, error) {
	pickupCommand := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupCommand.setOrderID(orderID),
		pickupCommand.setDelivererID(delivererID),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// OrderID returns the picked-up order.
func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DelivererID returns the reporting deliverer.
func (c ConfirmPickupCommand) DelivererID() kernel.UUID {
	return c.delivererID
}

func (c *ConfirmPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPickupCommand) setDelivererID(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivererID", err)
	}

	c.delivererID = delivererID
	return nil
}
