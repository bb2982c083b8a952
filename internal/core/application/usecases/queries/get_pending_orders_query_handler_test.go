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

func TestGetPendingOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("lists confirmed orders waiting for a deliverer, oldest first", func(t *testing.T) {
		// Given
		fx := newFixture(t)
		first := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, first, 10000)
		second := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, second, 20000)
		openCart(t, fx, kernel.NewUUID()) // never confirmed, stays out of the pool
		handler := queries.NewGetPendingOrdersQueryHandler(fx.orders)

		// When
		pending, err := handler.Handle(ctx, queries.NewGetPendingOrdersQuery())

		// Then
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.True(t, pending[0].ID.IsEqual(first.ID()))
		assert.True(t, pending[1].ID.IsEqual(second.ID()))
		assert.Equal(t, cart.LookingForDeliverer.String(), pending[0].Status)
		require.NotNil(t, pending[0].Price)
		assert.True(t, pending[0].Price.IsEqual(mustPrice(t, 10000)))
		assert.Nil(t, pending[0].DelivererID)
	})

	t.Run("a claimed order leaves the pool", func(t *testing.T) {
		fx := newFixture(t)
		order := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, order, 10000)
		claimOrder(t, fx, order.ID(), kernel.NewUUID())
		handler := queries.NewGetPendingOrdersQueryHandler(fx.orders)

		pending, err := handler.Handle(ctx, queries.NewGetPendingOrdersQuery())

		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("rejects a query built without the constructor", func(t *testing.T) {
		fx := newFixture(t)
		handler := queries.NewGetPendingOrdersQueryHandler(fx.orders)

		_, err := handler.Handle(ctx, queries.GetPendingOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
	})
}
