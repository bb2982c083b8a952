package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// AddCartItemResult reports the outcome of adding a food to a cart.
// CartReplaced is true when the add discarded an open cart for a different
// brand and started a fresh one.
type AddCartItemResult struct {
	CartID       kernel.UUID
	Line         *cart.LineItem
	CartReplaced bool
}

// AddCartItemCommandHandler implements the cart aggregation rules.
//
// A user has at most one open cart, scoped to one branch. Adding a food of
// the same brand merges into the existing line for that food or appends a new
// line; adding a food of a different brand discards the whole cart and starts
// a fresh one for the new branch. Line totals are always recomputed from the
// food's current unit price.
type AddCartItemCommandHandler struct {
	orders   ports.CustomerOrderRepository
	lines    ports.LineItemRepository
	branches ports.BranchRepository
	foods    ports.FoodRepository
	mappings ports.FoodBrandMappingRepository
	logger   *slog.Logger
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(
	orders ports.CustomerOrderRepository,
	lines ports.LineItemRepository,
	branches ports.BranchRepository,
	foods ports.FoodRepository,
	mappings ports.FoodBrandMappingRepository,
	logger *slog.Logger,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		orders:   orders,
		lines:    lines,
		branches: branches,
		foods:    foods,
		mappings: mappings,
		logger:   logger,
	}
}

// Handle processes the cart addition.
// Looks up the user's open cart and either merges the selection into it,
// appends a new line, or replaces the cart when the selected food belongs to
// a different brand. The replacement is logged as a "cart invalidated" event.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) (AddCartItemResult, error) {
	if err := command.Validate(); err != nil {
		return AddCartItemResult{}, err
	}

	food, err := h.foods.Get(ctx, command.FoodID())
	if err != nil {
		return AddCartItemResult{}, err
	}

	mapping, err := h.mappings.GetByFood(ctx, command.FoodID())
	if err != nil {
		return AddCartItemResult{}, err
	}

	open, err := h.orders.GetOpenByUser(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return h.startCart(ctx, command, food.Price(), false)
	}
	if err != nil {
		return AddCartItemResult{}, err
	}

	cartBranch, err := h.branches.Get(ctx, open.BranchID())
	if err != nil {
		return AddCartItemResult{}, err
	}

	if !cartBranch.BrandID().IsEqual(mapping.BrandID()) {
		if err := h.invalidateCart(ctx, open, mapping.BrandID()); err != nil {
			return AddCartItemResult{}, err
		}
		return h.startCart(ctx, command, food.Price(), true)
	}

	existing, err := h.lines.GetByOrderAndFood(ctx, open.ID(), command.FoodID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		line, lineErr := h.appendLine(ctx, open.ID(), command, food.Price())
		if lineErr != nil {
			return AddCartItemResult{}, lineErr
		}
		return AddCartItemResult{CartID: open.ID(), Line: line}, nil
	}
	if err != nil {
		return AddCartItemResult{}, err
	}

	if err := existing.Merge(command.Quantity(), food.Price()); err != nil {
		return AddCartItemResult{}, err
	}
	if err := h.lines.Update(ctx, existing); err != nil {
		return AddCartItemResult{}, err
	}

	return AddCartItemResult{CartID: open.ID(), Line: existing}, nil
}

// startCart opens a fresh cart for the requested branch and attaches the
// first line to it.
func (h AddCartItemCommandHandler) startCart(
	ctx context.Context,
	command AddCartItemCommand,
	unitPrice kernel.Price,
	replaced bool,
) (AddCartItemResult, error) {
	order, err := cart.NewCustomerOrder(kernel.NewUUID(), command.UserID(), command.BranchID())
	if err != nil {
		return AddCartItemResult{}, err
	}
	if err := h.orders.Add(ctx, order); err != nil {
		return AddCartItemResult{}, err
	}

	line, err := h.appendLine(ctx, order.ID(), command, unitPrice)
	if err != nil {
		return AddCartItemResult{}, err
	}

	return AddCartItemResult{CartID: order.ID(), Line: line, CartReplaced: replaced}, nil
}

func (h AddCartItemCommandHandler) appendLine(
	ctx context.Context,
	cartID kernel.UUID,
	command AddCartItemCommand,
	unitPrice kernel.Price,
) (*cart.LineItem, error) {
	line, err := cart.NewLineItem(kernel.NewUUID(), cartID, command.FoodID(), command.Quantity(), unitPrice)
	if err != nil {
		return nil, err
	}
	if err := h.lines.Add(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

// invalidateCart discards an open cart together with its lines so a cart for
// the new brand can take its place.
func (h AddCartItemCommandHandler) invalidateCart(ctx context.Context, open *cart.CustomerOrder, newBrandID kernel.UUID) error {
	if err := h.lines.RemoveAllByOrder(ctx, open.ID()); err != nil {
		return err
	}
	if err := h.orders.RemoveByID(ctx, open.ID()); err != nil {
		return err
	}

	h.logger.Info("cart invalidated",
		"user_id", open.UserID().String(),
		"cart_id", open.ID().String(),
		"old_branch_id", open.BranchID().String(),
		"new_brand_id", newBrandID.String(),
	)
	return nil
}
