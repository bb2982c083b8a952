package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to discard the user's open cart
// together with all its lines.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to discard the user's open cart.
func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	clearCommand := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := clearCommand.setUserID(userID); err != nil {
		return ClearCartCommand{}, err
	}

	return clearCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// UserID returns the identifier of the cart's owner.
func (c ClearCartCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ClearCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	c.userID = userID
	return nil
}
