package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to promote the user's open cart
// into the delivery workflow with a delivery address and a payment type.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(userID, addressID, cart.PaymentCash)
//	if err != nil {
//	    return fmt.Errorf("invalid confirmation: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to confirm order: %w", err)
//	}
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	addressID   kernel.UUID
	paymentType cart.PaymentType

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the user's open cart.
// Validates the identifiers and the payment type.
func NewConfirmOrderCommand(userID, addressID kernel.UUID, paymentType cart.PaymentType) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setUserID(userID),
		confirmCommand.setAddressID(addressID),
		confirmCommand.setPaymentType(paymentType),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the cart's owner.
func (c ConfirmOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// AddressID returns the chosen delivery address.
func (c ConfirmOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// PaymentType returns the chosen payment type.
func (c ConfirmOrderCommand) PaymentType() cart.PaymentType {
	return c.paymentType
}

func (c *ConfirmOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	c.userID = userID
	return nil
}

func (c *ConfirmOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("addressID", err)
	}

	c.addressID = addressID
	return nil
}

func (c *ConfirmOrderCommand) setPaymentType(paymentType cart.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	c.paymentType = paymentType
	return nil
}
