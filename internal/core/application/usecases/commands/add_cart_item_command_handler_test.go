package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddHandler(fx *fixture) commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(
		fx.orders, fx.lines, fx.branches, fx.foods, fx.mappings, discardLogger())
}

func TestAddCartItemCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("first add opens a cart with one line", func(t *testing.T) {
		// Given
		fx := newFixture(t)
		menu := seedMenu(t, fx, "Pizza X", 10000)
		userID := kernel.NewUUID()
		handler := newAddHandler(fx)

		// When
		cmd, err := commands.NewAddCartItemCommand(userID, menu.branchID, menu.foodID, 1)
		require.NoError(t, err)
		result, err := handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.False(t, result.CartReplaced)
		assert.Equal(t, 1, result.Line.Quantity())
		assert.True(t, result.Line.Price().IsEqual(mustPrice(t, 10000)))

		open, err := fx.orders.GetOpenByUser(ctx, userID)
		require.NoError(t, err)
		assert.True(t, open.ID().IsEqual(result.CartID))
		assert.True(t, open.BranchID().IsEqual(menu.branchID))
	})

	t.Run("repeat add merges into one line with fresh pricing", func(t *testing.T) {
		fx := newFixture(t)
		menu := seedMenu(t, fx, "Pizza X", 10000)
		userID := kernel.NewUUID()
		handler := newAddHandler(fx)

		cmd, err := commands.NewAddCartItemCommand(userID, menu.branchID, menu.foodID, 1)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Line.Quantity())
		assert.True(t, result.Line.Price().IsEqual(mustPrice(t, 20000)))

		open, err := fx.orders.GetOpenByUser(ctx, userID)
		require.NoError(t, err)
		cartLines, err := fx.lines.GetAllByOrder(ctx, open.ID())
		require.NoError(t, err)
		require.Len(t, cartLines, 1)
	})

	t.Run("merge reprices from the current unit price", func(t *testing.T) {
		fx := newFixture(t)
		menu := seedMenu(t, fx, "Pizza X", 10000)
		userID := kernel.NewUUID()
		handler := newAddHandler(fx)

		cmd, err := commands.NewAddCartItemCommand(userID, menu.branchID, menu.foodID, 1)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)
		require.NoError(t, err)

		// price change between adds
		food, err := fx.foods.Get(ctx, menu.foodID)
		require.NoError(t, err)
		require.NoError(t, food.ChangePrice(mustPrice(t, 12000)))
		require.NoError(t, fx.foods.Update(ctx, food))

		result, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Line.Quantity())
		assert.True(t, result.Line.Price().IsEqual(mustPrice(t, 24000)))
	})

	t.Run("different brand replaces the cart", func(t *testing.T) {
		fx := newFixture(t)
		pizzas := seedMenu(t, fx, "Pizza X", 10000)
		burgers := seedMenu(t, fx, "Burger Y", 15000)
		userID := kernel.NewUUID()
		handler := newAddHandler(fx)

		first, err := commands.NewAddCartItemCommand(userID, pizzas.branchID, pizzas.foodID, 2)
		require.NoError(t, err)
		firstResult, err := handler.Handle(ctx, first)
		require.NoError(t, err)

		second, err := commands.NewAddCartItemCommand(userID, burgers.branchID, burgers.foodID, 1)
		require.NoError(t, err)
		secondResult, err := handler.Handle(ctx, second)
		require.NoError(t, err)

		assert.True(t, secondResult.CartReplaced)
		assert.False(t, secondResult.CartID.IsEqual(firstResult.CartID))

		// old cart and its line are gone
		_, err = fx.orders.Get(ctx, firstResult.CartID)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		orphans, err := fx.lines.GetAllByOrder(ctx, firstResult.CartID)
		require.NoError(t, err)
		assert.Empty(t, orphans)

		// new cart is scoped to the new branch with exactly one line
		open, err := fx.orders.GetOpenByUser(ctx, userID)
		require.NoError(t, err)
		assert.True(t, open.BranchID().IsEqual(burgers.branchID))
		cartLines, err := fx.lines.GetAllByOrder(ctx, open.ID())
		require.NoError(t, err)
		require.Len(t, cartLines, 1)
		assert.True(t, cartLines[0].FoodID().IsEqual(burgers.foodID))
	})

	t.Run("user never has more than one open cart", func(t *testing.T) {
		fx := newFixture(t)
		pizzas := seedMenu(t, fx, "Pizza X", 10000)
		burgers := seedMenu(t, fx, "Burger Y", 15000)
		userID := kernel.NewUUID()
		handler := newAddHandler(fx)

		for _, menu := range []menuEntry{pizzas, burgers, pizzas} {
			cmd, err := commands.NewAddCartItemCommand(userID, menu.branchID, menu.foodID, 1)
			require.NoError(t, err)
			_, err = handler.Handle(ctx, cmd)
			require.NoError(t, err)
		}

		inProcess, err := fx.orders.GetInProcessByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, inProcess)

		open, err := fx.orders.GetOpenByUser(ctx, userID)
		require.NoError(t, err)
		assert.True(t, open.BranchID().IsEqual(pizzas.branchID))
	})

	t.Run("unknown food fails", func(t *testing.T) {
		fx := newFixture(t)
		handler := newAddHandler(fx)

		cmd, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unconstructed command is rejected", func(t *testing.T) {
		fx := newFixture(t)
		handler := newAddHandler(fx)

		_, err := handler.Handle(ctx, commands.AddCartItemCommand{})

		require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
	})
}
