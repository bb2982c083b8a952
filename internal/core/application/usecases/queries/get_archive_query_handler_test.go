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

func TestGetArchiveQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("lists only the user's delivered orders", func(t *testing.T) {
		// Given: one delivered, one still pending, one delivered for somebody else
		fx := newFixture(t)
		userID := kernel.NewUUID()

		delivered := openCart(t, fx, userID)
		confirmOrder(t, fx, delivered, 10000)
		deliverOrder(t, fx, delivered, kernel.NewUUID())

		pending := openCart(t, fx, userID)
		confirmOrder(t, fx, pending, 20000)

		foreign := openCart(t, fx, kernel.NewUUID())
		confirmOrder(t, fx, foreign, 30000)
		deliverOrder(t, fx, foreign, kernel.NewUUID())

		handler := queries.NewGetArchiveQueryHandler(fx.orders)

		// When
		query, err := queries.NewGetArchiveQuery(userID)
		require.NoError(t, err)
		archive, err := handler.Handle(ctx, query)

		// Then
		require.NoError(t, err)
		require.Len(t, archive, 1)
		assert.True(t, archive[0].ID.IsEqual(delivered.ID()))
		assert.Equal(t, cart.Delivered.String(), archive[0].Status)
	})

	t.Run("an empty archive is not an error", func(t *testing.T) {
		fx := newFixture(t)
		handler := queries.NewGetArchiveQueryHandler(fx.orders)

		query, err := queries.NewGetArchiveQuery(kernel.NewUUID())
		require.NoError(t, err)
		archive, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, archive)
	})
}
