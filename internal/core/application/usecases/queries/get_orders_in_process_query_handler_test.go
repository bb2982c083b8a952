package queries_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersInProcessQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("user sees confirmed orders until they resolve", func(t *testing.T) {
		// Given: one pending, one delivered, one still an open cart
		fx := newFixture(t)
		userID := kernel.NewUUID()
		delivererID := kernel.NewUUID()

		pending := openCart(t, fx, userID)
		confirmOrder(t, fx, pending, 10000)

		done := openCart(t, fx, userID)
		confirmOrder(t, fx, done, 20000)
		deliverOrder(t, fx, done, delivererID)

		openCart(t, fx, userID)

		handler := queries.NewGetOrdersInProcessQueryHandler(fx.orders)

		// When
		query, err := queries.NewGetOrdersInProcessQueryForUser(userID)
		require.NoError(t, err)
		inProcess, err := handler.Handle(ctx, query)

		// Then
		require.NoError(t, err)
		require.Len(t, inProcess, 1)
		assert.True(t, inProcess[0].ID.IsEqual(pending.ID()))
		assert.Equal(t, cart.LookingForDeliverer.String(), inProcess[0].Status)
	})

	t.Run("deliverer sees only orders on their hands", func(t *testing.T) {
		fx := newFixture(t)
		delivererID := kernel.NewUUID()

		mine := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, mine, 10000)
		claimOrder(t, fx, mine.ID(), delivererID)

		other := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, other, 20000)
		claimOrder(t, fx, other.ID(), kernel.NewUUID())

		unclaimed := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, unclaimed, 30000)

		handler := queries.NewGetOrdersInProcessQueryHandler(fx.orders)

		query, err := queries.NewGetOrdersInProcessQueryForDeliverer(delivererID)
		require.NoError(t, err)
		active, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.True(t, active[0].ID.IsEqual(mine.ID()))
		assert.Equal(t, cart.OrderReceived.String(), active[0].Status)
		require.NotNil(t, active[0].DelivererID)
		assert.True(t, active[0].DelivererID.IsEqual(delivererID))
	})

	t.Run("deliverer's completed orders drop off the list", func(t *testing.T) {
		fx := newFixture(t)
		delivererID := kernel.NewUUID()
		order := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, order, 10000)
		deliverOrder(t, fx, order, delivererID)
		handler := queries.NewGetOrdersInProcessQueryHandler(fx.orders)

		query, err := queries.NewGetOrdersInProcessQueryForDeliverer(delivererID)
		require.NoError(t, err)
		active, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("rejects a query built without a constructor", func(t *testing.T) {
		fx := newFixture(t)
		handler := queries.NewGetOrdersInProcessQueryHandler(fx.orders)

		_, err := handler.Handle(ctx, queries.GetOrdersInProcessQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrdersInProcessQueryIsNotConstructed)
	})
}
