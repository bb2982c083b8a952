package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// confirmedOrder seeds a confirmed order waiting for a deliverer and returns
// the owner and the order ID.
func confirmedOrder(t *testing.T, fx *fixture) (kernel.UUID, kernel.UUID) {
	t.Helper()
	ctx := context.Background()

	userID, addressID := cartWithTwoLines(t, fx)
	handler := commands.NewConfirmOrderCommandHandler(fx.orders, fx.lines, fx.addresses)
	cmd, err := commands.NewConfirmOrderCommand(userID, addressID, cart.PaymentCash)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	inProcess, err := fx.orders.GetInProcessByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, inProcess, 1)
	return userID, inProcess[0].ID()
}

func TestClaimOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the order to a free deliverer", func(t *testing.T) {
		// Given
		fx := newFixture(t)
		_, orderID := confirmedOrder(t, fx)
		delivererID := seedDeliverer(t, fx, "fast", 60)
		handler := commands.NewClaimOrderCommandHandler(fx.orders, fx.deliverers)

		// When
		cmd, err := commands.NewClaimOrderCommand(orderID, delivererID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		// Then
		claimed, err := fx.orders.Get(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, cart.OrderReceived, claimed.Status())
		require.NotNil(t, claimed.DelivererID())
		assert.True(t, claimed.DelivererID().IsEqual(delivererID))

		pending, err := fx.orders.GetAllPending(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("second claim of the same order is a conflict", func(t *testing.T) {
		fx := newFixture(t)
		_, orderID := confirmedOrder(t, fx)
		first := seedDeliverer(t, fx, "first", 60)
		second := seedDeliverer(t, fx, "second", 40)
		handler := commands.NewClaimOrderCommandHandler(fx.orders, fx.deliverers)

		cmd, err := commands.NewClaimOrderCommand(orderID, first)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		cmd, err = commands.NewClaimOrderCommand(orderID, second)
		require.NoError(t, err)
		err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrConflict)

		// the first deliverer keeps the order
		claimed, getErr := fx.orders.Get(ctx, orderID)
		require.NoError(t, getErr)
		assert.True(t, claimed.DelivererID().IsEqual(first))
	})

	t.Run("a busy deliverer cannot claim another order", func(t *testing.T) {
		fx := newFixture(t)
		_, firstOrder := confirmedOrder(t, fx)
		_, secondOrder := confirmedOrder(t, fx)
		delivererID := seedDeliverer(t, fx, "greedy", 60)
		handler := commands.NewClaimOrderCommandHandler(fx.orders, fx.deliverers)

		cmd, err := commands.NewClaimOrderCommand(firstOrder, delivererID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		cmd, err = commands.NewClaimOrderCommand(secondOrder, delivererID)
		require.NoError(t, err)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrDelivererIsBusy)
	})

	t.Run("unknown deliverer cannot claim", func(t *testing.T) {
		fx := newFixture(t)
		_, orderID := confirmedOrder(t, fx)
		handler := commands.NewClaimOrderCommandHandler(fx.orders, fx.deliverers)

		cmd, err := commands.NewClaimOrderCommand(orderID, kernel.NewUUID())
		require.NoError(t, err)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
