package queries_test

import (
	"context"
	"path/filepath"
	"testing"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/adapters/out/jsonstore/cartrepo"
	"foodorder/internal/adapters/out/jsonstore/itemrepo"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// fixture wires the order and line repositories onto JSON files in a
// per-test directory. Query handlers read through the same repositories the
// command side writes through.
type fixture struct {
	orders *cartrepo.Repository
	lines  *itemrepo.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	orderCol, err := jsonstore.NewCollection(filepath.Join(dir, "customer_orders.json"), cartrepo.CustomerOrderID)
	require.NoError(t, err)
	lineCol, err := jsonstore.NewCollection(filepath.Join(dir, "line_items.json"), itemrepo.LineItemID)
	require.NoError(t, err)

	return &fixture{
		orders: cartrepo.NewRepository(orderCol),
		lines:  itemrepo.NewRepository(lineCol),
	}
}

// openCart seeds an open cart for the given user.
func openCart(t *testing.T, fx *fixture, userID kernel.UUID) *cart.CustomerOrder {
	t.Helper()

	order, err := cart.NewCustomerOrder(kernel.NewUUID(), userID, kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, fx.orders.Add(context.Background(), order))
	return order
}

// addLine appends a line to the order and returns it. The line total is
// unitPrice times quantity.
func addLine(t *testing.T, fx *fixture, orderID kernel.UUID, quantity int, unitPrice int64) *cart.LineItem {
	t.Helper()

	line, err := cart.NewLineItem(kernel.NewUUID(), orderID, kernel.NewUUID(), quantity, mustPrice(t, unitPrice))
	require.NoError(t, err)
	require.NoError(t, fx.lines.Add(context.Background(), line))
	return line
}

// confirmOrder moves the open cart into the pending pool.
func confirmOrder(t *testing.T, fx *fixture, order *cart.CustomerOrder, total int64) {
	t.Helper()

	require.NoError(t, order.Confirm(kernel.NewUUID(), cart.PaymentCard, mustPrice(t, total)))
	require.NoError(t, fx.orders.Update(context.Background(), order))
}

// claimOrder assigns the order to a deliverer through the repository's
// atomic claim.
func claimOrder(t *testing.T, fx *fixture, orderID, delivererID kernel.UUID) {
	t.Helper()

	_, err := fx.orders.Claim(context.Background(), orderID, delivererID)
	require.NoError(t, err)
}

// deliverOrder drives a claimed order all the way to DELIVERED.
func deliverOrder(t *testing.T, fx *fixture, order *cart.CustomerOrder, delivererID kernel.UUID) {
	t.Helper()
	ctx := context.Background()

	claimOrder(t, fx, order.ID(), delivererID)
	delivered, err := fx.orders.Get(ctx, order.ID())
	require.NoError(t, err)
	require.NoError(t, delivered.ConfirmPickup(delivererID))
	require.NoError(t, delivered.CompleteDelivery(delivererID))
	require.NoError(t, fx.orders.Update(ctx, delivered))
}

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return price
}
