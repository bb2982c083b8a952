package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put a food into the user's cart.
// Carries the user, the branch the user is browsing, the selected food, and
// the requested quantity.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(userID, branchID, foodID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
//	if result.CartReplaced {
//	    fmt.Println("previous cart was discarded: different brand")
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	branchID kernel.UUID
	foodID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a food selection to a cart.
// Validates that all identifiers are valid and the quantity is positive.
func NewAddCartItemCommand(userID, branchID, foodID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cartCommand := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setUserID(userID),
		cartCommand.setBranchID(branchID),
		cartCommand.setFoodID(foodID),
		cartCommand.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the identifier of the user adding the food.
func (c AddCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// BranchID returns the branch the user is ordering from.
func (c AddCartItemCommand) BranchID() kernel.UUID {
	return c.branchID
}

// FoodID returns the selected food's identifier.
func (c AddCartItemCommand) FoodID() kernel.UUID {
	return c.foodID
}

// Quantity returns the requested number of units.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("branchID", err)
	}

	c.branchID = branchID
	return nil
}

func (c *AddCartItemCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("foodID", err)
	}

	c.foodID = foodID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
