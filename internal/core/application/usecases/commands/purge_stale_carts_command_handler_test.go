package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeStaleCartsCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh carts survive the purge", func(t *testing.T) {
		fx := newFixture(t)
		userID, _ := cartWithTwoLines(t, fx)
		handler := commands.NewPurgeStaleCartsCommandHandler(fx.orders, fx.lines)

		cmd, err := commands.NewPurgeStaleCartsCommand(24 * time.Hour)
		require.NoError(t, err)
		purged, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, purged)

		_, err = fx.orders.GetOpenByUser(ctx, userID)
		require.NoError(t, err)
	})

	t.Run("stale carts are removed with their lines", func(t *testing.T) {
		fx := newFixture(t)
		userID, _ := cartWithTwoLines(t, fx)
		handler := commands.NewPurgeStaleCartsCommandHandler(fx.orders, fx.lines)

		open, err := fx.orders.GetOpenByUser(ctx, userID)
		require.NoError(t, err)

		// a nanosecond TTL makes the freshly created cart already stale
		time.Sleep(time.Millisecond)
		cmd, err := commands.NewPurgeStaleCartsCommand(time.Nanosecond)
		require.NoError(t, err)
		purged, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, purged)

		_, err = fx.orders.GetOpenByUser(ctx, userID)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		orphans, err := fx.lines.GetAllByOrder(ctx, open.ID())
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("confirmed orders are never purged", func(t *testing.T) {
		fx := newFixture(t)
		userID, orderID := confirmedOrder(t, fx)
		handler := commands.NewPurgeStaleCartsCommandHandler(fx.orders, fx.lines)

		time.Sleep(time.Millisecond)
		cmd, err := commands.NewPurgeStaleCartsCommand(time.Nanosecond)
		require.NoError(t, err)
		purged, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, purged)

		inProcess, err := fx.orders.GetInProcessByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, inProcess, 1)
		assert.True(t, inProcess[0].ID().IsEqual(orderID))
	})

	t.Run("rejects a non-positive ttl", func(t *testing.T) {
		_, err := commands.NewPurgeStaleCartsCommand(0)

		require.ErrorIs(t, err, commands.ErrTTLIsInvalid)
	})
}
