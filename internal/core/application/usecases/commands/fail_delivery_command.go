package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrFailDeliveryCommandIsNotConstructed = errors.New(
	"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
)

// FailDeliveryCommand represents a deliverer's report that the delivery
// cannot be completed, with a free-text reason.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	delivererID kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command to fail a delivery.
// The reason is required; it is persisted and linked from the order.
func NewFailDeliveryCommand(orderID, delivererID kernel.UUID, reason string) (FailDeliveryCommand, error) {
	failCommand := FailDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		failCommand.setOrderID(orderID),
		failCommand.setDelivererID(delivererID),
		failCommand.setReason(reason),
	); err != nil {
		return FailDeliveryCommand{}, err
	}

	return failCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// OrderID returns the failed order.
func (c FailDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DelivererID returns the reporting deliverer.
func (c FailDeliveryCommand) DelivererID() kernel.UUID {
	return c.delivererID
}

// Reason returns the free-text failure reason.
func (c FailDeliveryCommand) Reason() string {
	return c.reason
}

func (c *FailDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *FailDeliveryCommand) setDelivererID(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivererID", err)
	}

	c.delivererID = delivererID
	return nil
}

func (c *FailDeliveryCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
