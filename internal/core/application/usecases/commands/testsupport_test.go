package commands_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/adapters/out/jsonstore/accountrepo"
	"foodorder/internal/adapters/out/jsonstore/cartrepo"
	"foodorder/internal/adapters/out/jsonstore/catalogrepo"
	"foodorder/internal/adapters/out/jsonstore/delivererrepo"
	"foodorder/internal/adapters/out/jsonstore/itemrepo"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// fixture wires every repository onto JSON files in a per-test directory, so
// handler tests run against the real persistence path.
type fixture struct {
	orders       *cartrepo.Repository
	descriptions *cartrepo.DescriptionRepository
	lines        *itemrepo.Repository
	brands       *catalogrepo.BrandRepository
	branches     *catalogrepo.BranchRepository
	foods        *catalogrepo.FoodRepository
	mappings     *catalogrepo.MappingRepository
	addresses    *accountrepo.AddressRepository
	deliverers   *delivererrepo.Repository
	transports   *delivererrepo.TransportRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	orderCol, err := jsonstore.NewCollection(filepath.Join(dir, "customer_orders.json"), cartrepo.CustomerOrderID)
	require.NoError(t, err)
	descriptionCol, err := jsonstore.NewCollection(filepath.Join(dir, "descriptions.json"), cartrepo.DescriptionID)
	require.NoError(t, err)
	lineCol, err := jsonstore.NewCollection(filepath.Join(dir, "line_items.json"), itemrepo.LineItemID)
	require.NoError(t, err)
	brandCol, err := jsonstore.NewCollection(filepath.Join(dir, "brands.json"), catalogrepo.BrandID)
	require.NoError(t, err)
	branchCol, err := jsonstore.NewCollection(filepath.Join(dir, "branches.json"), catalogrepo.BranchID)
	require.NoError(t, err)
	foodCol, err := jsonstore.NewCollection(filepath.Join(dir, "foods.json"), catalogrepo.FoodID)
	require.NoError(t, err)
	mappingCol, err := jsonstore.NewCollection(filepath.Join(dir, "food_brand_mappings.json"), catalogrepo.MappingID)
	require.NoError(t, err)
	addressCol, err := jsonstore.NewCollection(filepath.Join(dir, "addresses.json"), accountrepo.AddressID)
	require.NoError(t, err)
	delivererCol, err := jsonstore.NewCollection(filepath.Join(dir, "deliverers.json"), delivererrepo.DelivererID)
	require.NoError(t, err)
	transportCol, err := jsonstore.NewCollection(filepath.Join(dir, "transports.json"), delivererrepo.TransportID)
	require.NoError(t, err)

	return &fixture{
		orders:       cartrepo.NewRepository(orderCol),
		descriptions: cartrepo.NewDescriptionRepository(descriptionCol),
		lines:        itemrepo.NewRepository(lineCol),
		brands:       catalogrepo.NewBrandRepository(brandCol),
		branches:     catalogrepo.NewBranchRepository(branchCol),
		foods:        catalogrepo.NewFoodRepository(foodCol),
		mappings:     catalogrepo.NewMappingRepository(mappingCol),
		addresses:    accountrepo.NewAddressRepository(addressCol),
		deliverers:   delivererrepo.NewRepository(delivererCol),
		transports:   delivererrepo.NewTransportRepository(transportCol),
	}
}

// menuEntry is a food wired into a brand's menu for a test.
type menuEntry struct {
	brandID  kernel.UUID
	branchID kernel.UUID
	foodID   kernel.UUID
}

// seedMenu creates a brand with one branch and one food on its menu.
func seedMenu(t *testing.T, fx *fixture, brandName string, unitPrice int64) menuEntry {
	t.Helper()
	ctx := context.Background()

	brand, err := catalog.NewBrand(kernel.NewUUID(), brandName)
	require.NoError(t, err)
	require.NoError(t, fx.brands.Add(ctx, brand))

	branch, err := catalog.NewBranch(kernel.NewUUID(), brand.ID(), brandName+" downtown", "1 Main St")
	require.NoError(t, err)
	require.NoError(t, fx.branches.Add(ctx, branch))

	price, err := kernel.NewPrice(unitPrice)
	require.NoError(t, err)
	food, err := catalog.NewFood(kernel.NewUUID(), brandName+" special", price)
	require.NoError(t, err)
	require.NoError(t, fx.foods.Add(ctx, food))

	mapping, err := catalog.NewFoodBrandMapping(kernel.NewUUID(), food.ID(), brand.ID(), "mains")
	require.NoError(t, err)
	require.NoError(t, fx.mappings.Add(ctx, mapping))

	return menuEntry{brandID: brand.ID(), branchID: branch.ID(), foodID: food.ID()}
}

// seedExtraFood adds another food to an existing brand's menu.
func seedExtraFood(t *testing.T, fx *fixture, brandID kernel.UUID, name string, unitPrice int64) kernel.UUID {
	t.Helper()
	ctx := context.Background()

	price, err := kernel.NewPrice(unitPrice)
	require.NoError(t, err)
	food, err := catalog.NewFood(kernel.NewUUID(), name, price)
	require.NoError(t, err)
	require.NoError(t, fx.foods.Add(ctx, food))

	mapping, err := catalog.NewFoodBrandMapping(kernel.NewUUID(), food.ID(), brandID, "mains")
	require.NoError(t, err)
	require.NoError(t, fx.mappings.Add(ctx, mapping))

	return food.ID()
}

func seedAddress(t *testing.T, fx *fixture, userID kernel.UUID) kernel.UUID {
	t.Helper()

	address, err := account.NewAddress(kernel.NewUUID(), userID, "12 Oak Ave")
	require.NoError(t, err)
	require.NoError(t, fx.addresses.Add(context.Background(), address))
	return address.ID()
}

func seedDeliverer(t *testing.T, fx *fixture, name string, speed int) kernel.UUID {
	t.Helper()
	ctx := context.Background()

	transport, err := deliverer.NewTransport(kernel.NewUUID(), name+" transport", speed)
	require.NoError(t, err)
	require.NoError(t, fx.transports.Add(ctx, transport))

	d, err := deliverer.NewDeliverer(kernel.NewUUID(), name, "", transport.ID())
	require.NoError(t, err)
	require.NoError(t, fx.deliverers.Add(ctx, d))
	return d.ID()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return price
}
