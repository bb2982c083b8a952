package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/adapters/out/jsonstore/accountrepo"
	"foodorder/internal/adapters/out/jsonstore/cartrepo"
	"foodorder/internal/adapters/out/jsonstore/catalogrepo"
	"foodorder/internal/adapters/out/jsonstore/delivererrepo"
	"foodorder/internal/adapters/out/jsonstore/itemrepo"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"

	"github.com/pkg/errors"
)

// CompositionRoot wires the JSON-file repositories into command and query
// handlers. Every handler receives its dependencies explicitly; nothing in
// the application reaches for globals.
type CompositionRoot struct {
	orders       *cartrepo.Repository
	descriptions *cartrepo.DescriptionRepository
	lines        *itemrepo.Repository
	brands       *catalogrepo.BrandRepository
	branches     *catalogrepo.BranchRepository
	categories   *catalogrepo.CategoryRepository
	foods        *catalogrepo.FoodRepository
	mappings     *catalogrepo.MappingRepository
	users        *accountrepo.UserRepository
	addresses    *accountrepo.AddressRepository
	deliverers   *delivererrepo.Repository
	transports   *delivererrepo.TransportRepository

	logger *slog.Logger
}

// NewCompositionRoot creates the repositories over JSON files under the
// configured data directory, creating the directory if needed.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}

	orderCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "customer_orders.json"), cartrepo.CustomerOrderID)
	if err != nil {
		return nil, err
	}
	descriptionCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "descriptions.json"), cartrepo.DescriptionID)
	if err != nil {
		return nil, err
	}
	lineCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "line_items.json"), itemrepo.LineItemID)
	if err != nil {
		return nil, err
	}
	brandCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "brands.json"), catalogrepo.BrandID)
	if err != nil {
		return nil, err
	}
	branchCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "branches.json"), catalogrepo.BranchID)
	if err != nil {
		return nil, err
	}
	categoryCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "categories.json"), catalogrepo.CategoryID)
	if err != nil {
		return nil, err
	}
	foodCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "foods.json"), catalogrepo.FoodID)
	if err != nil {
		return nil, err
	}
	mappingCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "food_brand_mappings.json"), catalogrepo.MappingID)
	if err != nil {
		return nil, err
	}
	userCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "users.json"), accountrepo.UserID)
	if err != nil {
		return nil, err
	}
	addressCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "addresses.json"), accountrepo.AddressID)
	if err != nil {
		return nil, err
	}
	delivererCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "deliverers.json"), delivererrepo.DelivererID)
	if err != nil {
		return nil, err
	}
	transportCol, err := jsonstore.NewCollection(filepath.Join(config.DataDir, "transports.json"), delivererrepo.TransportID)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		orders:       cartrepo.NewRepository(orderCol),
		descriptions: cartrepo.NewDescriptionRepository(descriptionCol),
		lines:        itemrepo.NewRepository(lineCol),
		brands:       catalogrepo.NewBrandRepository(brandCol),
		branches:     catalogrepo.NewBranchRepository(branchCol),
		categories:   catalogrepo.NewCategoryRepository(categoryCol),
		foods:        catalogrepo.NewFoodRepository(foodCol),
		mappings:     catalogrepo.NewMappingRepository(mappingCol),
		users:        accountrepo.NewUserRepository(userCol),
		addresses:    accountrepo.NewAddressRepository(addressCol),
		deliverers:   delivererrepo.NewRepository(delivererCol),
		transports:   delivererrepo.NewTransportRepository(transportCol),
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.orders, c.lines, c.branches, c.foods, c.mappings, c.logger)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.orders, c.lines)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orders, c.lines, c.addresses)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.orders, c.deliverers)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	return commands.NewFailDeliveryCommandHandler(c.orders, c.descriptions)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orders, c.deliverers, c.transports)
}

func (c *CompositionRoot) CreatePurgeStaleCartsCommandHandler() commands.PurgeStaleCartsCommandHandler {
	return commands.NewPurgeStaleCartsCommandHandler(c.orders, c.lines)
}

func (c *CompositionRoot) CreateGetOpenCartQueryHandler() queries.GetOpenCartQueryHandler {
	return queries.NewGetOpenCartQueryHandler(c.orders, c.lines)
}

func (c *CompositionRoot) CreateGetCartItemsQueryHandler() queries.GetCartItemsQueryHandler {
	return queries.NewGetCartItemsQueryHandler(c.lines)
}

func (c *CompositionRoot) CreateGetCartTotalQueryHandler() queries.GetCartTotalQueryHandler {
	return queries.NewGetCartTotalQueryHandler(c.lines)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersInProcessQueryHandler() queries.GetOrdersInProcessQueryHandler {
	return queries.NewGetOrdersInProcessQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetArchiveQueryHandler() queries.GetArchiveQueryHandler {
	return queries.NewGetArchiveQueryHandler(c.orders)
}

// CreateServer builds the HTTP server over the ordering workflow handlers.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateAddCartItemCommandHandler(),
		c.CreateClearCartCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateConfirmPickupCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateFailDeliveryCommandHandler(),
		c.CreateGetOpenCartQueryHandler(),
		c.CreateGetCartItemsQueryHandler(),
		c.CreateGetCartTotalQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetOrdersInProcessQueryHandler(),
		c.CreateGetArchiveQueryHandler(),
	)
}

// CreateManagementServer builds the catalog and account management surface.
func (c *CompositionRoot) CreateManagementServer() *httpadapter.ManagementServer {
	return httpadapter.NewManagementServer(
		c.brands,
		c.branches,
		c.categories,
		c.foods,
		c.mappings,
		c.users,
		c.addresses,
		c.deliverers,
		c.transports,
	)
}
