package queries_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOpenCartQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the cart with its lines and summed total", func(t *testing.T) {
		// Given
		fx := newFixture(t)
		userID := kernel.NewUUID()
		open := openCart(t, fx, userID)
		addLine(t, fx, open.ID(), 2, 10000)
		addLine(t, fx, open.ID(), 1, 15000)
		handler := queries.NewGetOpenCartQueryHandler(fx.orders, fx.lines)

		// When
		query, err := queries.NewGetOpenCartQuery(userID)
		require.NoError(t, err)
		resp, err := handler.Handle(ctx, query)

		// Then
		require.NoError(t, err)
		assert.True(t, resp.CartID.IsEqual(open.ID()))
		assert.True(t, resp.BranchID.IsEqual(open.BranchID()))
		require.Len(t, resp.Lines, 2)
		assert.True(t, resp.Total.IsEqual(mustPrice(t, 35000)))
	})

	t.Run("a cart without lines has no total", func(t *testing.T) {
		fx := newFixture(t)
		userID := kernel.NewUUID()
		openCart(t, fx, userID)
		handler := queries.NewGetOpenCartQueryHandler(fx.orders, fx.lines)

		query, err := queries.NewGetOpenCartQuery(userID)
		require.NoError(t, err)
		resp, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, resp.Lines)
		assert.Equal(t, kernel.Price{}, resp.Total)
	})

	t.Run("fails when the user has no open cart", func(t *testing.T) {
		fx := newFixture(t)
		handler := queries.NewGetOpenCartQueryHandler(fx.orders, fx.lines)

		query, err := queries.NewGetOpenCartQuery(kernel.NewUUID())
		require.NoError(t, err)
		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("a confirmed order is no longer the open cart", func(t *testing.T) {
		fx := newFixture(t)
		userID := kernel.NewUUID()
		open := openCart(t, fx, userID)
		addLine(t, fx, open.ID(), 1, 10000)
		confirmOrder(t, fx, open, 10000)
		handler := queries.NewGetOpenCartQueryHandler(fx.orders, fx.lines)

		query, err := queries.NewGetOpenCartQuery(userID)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects a query built without the constructor", func(t *testing.T) {
		fx := newFixture(t)
		handler := queries.NewGetOpenCartQueryHandler(fx.orders, fx.lines)

		_, err := handler.Handle(ctx, queries.GetOpenCartQuery{})

		require.ErrorIs(t, err, queries.ErrGetOpenCartQueryIsNotConstructed)
	})
}
