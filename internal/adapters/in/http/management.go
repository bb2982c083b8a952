package http

import (
	"net/http"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// ManagementServer exposes the catalog and account data the ordering workflow
// consumes: brands, branches, foods, menus, users, addresses, deliverers, and
// transports. These are thin create-and-list endpoints over the repositories.
type ManagementServer struct {
	brands     ports.BrandRepository
	branches   ports.BranchRepository
	categories ports.CategoryRepository
	foods      ports.FoodRepository
	mappings   ports.FoodBrandMappingRepository
	users      ports.UserRepository
	addresses  ports.AddressRepository
	deliverers ports.DelivererRepository
	transports ports.TransportRepository
}

// NewManagementServer creates the management server over the given
// repositories.
func NewManagementServer(
	brands ports.BrandRepository,
	branches ports.BranchRepository,
	categories ports.CategoryRepository,
	foods ports.FoodRepository,
	mappings ports.FoodBrandMappingRepository,
	users ports.UserRepository,
	addresses ports.AddressRepository,
	deliverers ports.DelivererRepository,
	transports ports.TransportRepository,
) *ManagementServer {
	return &ManagementServer{
		brands:     brands,
		branches:   branches,
		categories: categories,
		foods:      foods,
		mappings:   mappings,
		users:      users,
		addresses:  addresses,
		deliverers: deliverers,
		transports: transports,
	}
}

// RegisterRoutes mounts the management surface under /api/v1.
func (s *ManagementServer) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/brands", s.CreateBrand)
	api.GET("/brands", s.GetBrands)
	api.POST("/branches", s.CreateBranch)
	api.GET("/brands/:brand_id/branches", s.GetBranches)
	api.POST("/categories", s.CreateCategory)
	api.GET("/categories", s.GetCategories)
	api.POST("/foods", s.CreateFood)
	api.GET("/foods", s.GetFoods)
	api.POST("/menu", s.CreateMenuEntry)
	api.GET("/brands/:brand_id/menu", s.GetMenu)

	api.POST("/users", s.CreateUser)
	api.GET("/users/:user_id", s.GetUser)
	api.POST("/addresses", s.CreateAddress)
	api.GET("/users/:user_id/addresses", s.GetAddresses)

	api.POST("/deliverers", s.CreateDeliverer)
	api.GET("/deliverers", s.GetDeliverers)
	api.POST("/transports", s.CreateTransport)
	api.GET("/transports", s.GetTransports)
}

// CreateBrand handles POST /api/v1/brands.
func (s *ManagementServer) CreateBrand(ctx echo.Context) error {
	var req NewBrand
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	brand, err := catalog.NewBrand(kernel.NewUUID(), req.Name)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.brands.Add(ctx.Request().Context(), brand); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, brandFromDomain(brand))
}

// GetBrands handles GET /api/v1/brands. An optional ?search= narrows the
// list by a case-insensitive name match.
func (s *ManagementServer) GetBrands(ctx echo.Context) error {
	var (
		brands []*catalog.Brand
		err    error
	)
	if search := ctx.QueryParam("search"); search != "" {
		brands, err = s.brands.Search(ctx.Request().Context(), search)
	} else {
		brands, err = s.brands.GetAll(ctx.Request().Context())
	}
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Brand, len(brands))
	for i, brand := range brands {
		response[i] = brandFromDomain(brand)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateBranch handles POST /api/v1/branches.
func (s *ManagementServer) CreateBranch(ctx echo.Context) error {
	var req NewBranch
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	brandID, err := kernel.UUIDFromBytes(req.BrandID)
	if err != nil {
		return badRequest(ctx, "invalid brand_id")
	}

	// the brand must exist before it gets outlets
	if _, err := s.brands.Get(ctx.Request().Context(), brandID); err != nil {
		return respondError(ctx, err)
	}

	branch, err := catalog.NewBranch(kernel.NewUUID(), brandID, req.Name, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.branches.Add(ctx.Request().Context(), branch); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, branchFromDomain(branch))
}

// GetBranches handles GET /api/v1/brands/:brand_id/branches.
func (s *ManagementServer) GetBranches(ctx echo.Context) error {
	brandID, err := pathUUID(ctx, "brand_id")
	if err != nil {
		return badRequest(ctx, "invalid brand_id")
	}

	branches, err := s.branches.GetAllByBrand(ctx.Request().Context(), brandID)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Branch, len(branches))
	for i, branch := range branches {
		response[i] = branchFromDomain(branch)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/categories.
func (s *ManagementServer) CreateCategory(ctx echo.Context) error {
	var req NewCategory
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	category, err := catalog.NewCategory(kernel.NewUUID(), req.Name)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.categories.Add(ctx.Request().Context(), category); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, categoryFromDomain(category))
}

// GetCategories handles GET /api/v1/categories.
func (s *ManagementServer) GetCategories(ctx echo.Context) error {
	categories, err := s.categories.GetAll(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Category, len(categories))
	for i, category := range categories {
		response[i] = categoryFromDomain(category)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateFood handles POST /api/v1/foods.
func (s *ManagementServer) CreateFood(ctx echo.Context) error {
	var req NewFood
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	price, err := kernel.PriceFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "invalid price")
	}

	food, err := catalog.NewFood(kernel.NewUUID(), req.Name, price)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.foods.Add(ctx.Request().Context(), food); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, foodFromDomain(food))
}

// GetFoods handles GET /api/v1/foods. An optional ?search= narrows the list
// by a case-insensitive name match.
func (s *ManagementServer) GetFoods(ctx echo.Context) error {
	var (
		foods []*catalog.Food
		err   error
	)
	if search := ctx.QueryParam("search"); search != "" {
		foods, err = s.foods.Search(ctx.Request().Context(), search)
	} else {
		foods, err = s.foods.GetAll(ctx.Request().Context())
	}
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Food, len(foods))
	for i, food := range foods {
		response[i] = foodFromDomain(food)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuEntry handles POST /api/v1/menu: it puts a food on a brand's
// menu under a category.
func (s *ManagementServer) CreateMenuEntry(ctx echo.Context) error {
	var req NewFoodBrandMapping
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	foodID, err := kernel.UUIDFromBytes(req.FoodID)
	if err != nil {
		return badRequest(ctx, "invalid food_id")
	}
	brandID, err := kernel.UUIDFromBytes(req.BrandID)
	if err != nil {
		return badRequest(ctx, "invalid brand_id")
	}

	if _, err := s.foods.Get(ctx.Request().Context(), foodID); err != nil {
		return respondError(ctx, err)
	}
	if _, err := s.brands.Get(ctx.Request().Context(), brandID); err != nil {
		return respondError(ctx, err)
	}

	mapping, err := catalog.NewFoodBrandMapping(kernel.NewUUID(), foodID, brandID, req.Category)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.mappings.Add(ctx.Request().Context(), mapping); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, mappingFromDomain(mapping))
}

// GetMenu handles GET /api/v1/brands/:brand_id/menu.
func (s *ManagementServer) GetMenu(ctx echo.Context) error {
	brandID, err := pathUUID(ctx, "brand_id")
	if err != nil {
		return badRequest(ctx, "invalid brand_id")
	}

	mappings, err := s.mappings.GetAllByBrand(ctx.Request().Context(), brandID)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]FoodBrandMapping, len(mappings))
	for i, mapping := range mappings {
		response[i] = mappingFromDomain(mapping)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users.
func (s *ManagementServer) CreateUser(ctx echo.Context) error {
	var req NewUser
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	user, err := account.NewUser(kernel.NewUUID(), req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.users.Add(ctx.Request().Context(), user); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userFromDomain(user))
}

// GetUser handles GET /api/v1/users/:user_id.
func (s *ManagementServer) GetUser(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	user, err := s.users.Get(ctx.Request().Context(), userID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromDomain(user))
}

// CreateAddress handles POST /api/v1/addresses.
func (s *ManagementServer) CreateAddress(ctx echo.Context) error {
	var req NewAddress
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	userID, err := kernel.UUIDFromBytes(req.UserID)
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	if _, err := s.users.Get(ctx.Request().Context(), userID); err != nil {
		return respondError(ctx, err)
	}

	address, err := account.NewAddress(kernel.NewUUID(), userID, req.Text)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.addresses.Add(ctx.Request().Context(), address); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, addressFromDomain(address))
}

// GetAddresses handles GET /api/v1/users/:user_id/addresses.
func (s *ManagementServer) GetAddresses(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	addresses, err := s.addresses.GetAllByUser(ctx.Request().Context(), userID)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Address, len(addresses))
	for i, address := range addresses {
		response[i] = addressFromDomain(address)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliverer handles POST /api/v1/deliverers.
func (s *ManagementServer) CreateDeliverer(ctx echo.Context) error {
	var req NewDeliverer
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	transportID, err := kernel.UUIDFromBytes(req.TransportID)
	if err != nil {
		return badRequest(ctx, "invalid transport_id")
	}

	if _, err := s.transports.Get(ctx.Request().Context(), transportID); err != nil {
		return respondError(ctx, err)
	}

	d, err := deliverer.NewDeliverer(kernel.NewUUID(), req.Name, req.Phone, transportID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.deliverers.Add(ctx.Request().Context(), d); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, delivererFromDomain(d))
}

// GetDeliverers handles GET /api/v1/deliverers.
func (s *ManagementServer) GetDeliverers(ctx echo.Context) error {
	deliverers, err := s.deliverers.GetAll(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Deliverer, len(deliverers))
	for i, d := range deliverers {
		response[i] = delivererFromDomain(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateTransport handles POST /api/v1/transports.
func (s *ManagementServer) CreateTransport(ctx echo.Context) error {
	var req NewTransport
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	transport, err := deliverer.NewTransport(kernel.NewUUID(), req.Name, req.Speed)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.transports.Add(ctx.Request().Context(), transport); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, transportFromDomain(transport))
}

// GetTransports handles GET /api/v1/transports.
func (s *ManagementServer) GetTransports(ctx echo.Context) error {
	transports, err := s.transports.GetAll(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Transport, len(transports))
	for i, transport := range transports {
		response[i] = transportFromDomain(transport)
	}
	return ctx.JSON(http.StatusOK, response)
}
