// Package http is the inbound REST adapter. It translates echo requests into
// commands and queries and maps application errors onto HTTP statuses.
package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server exposes the ordering workflow over HTTP. It holds one handler per
// use case, wired in by the composition root.
type Server struct {
	addCartItemHandler      commands.AddCartItemCommandHandler
	clearCartHandler        commands.ClearCartCommandHandler
	confirmOrderHandler     commands.ConfirmOrderCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	confirmPickupHandler    commands.ConfirmPickupCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	failDeliveryHandler     commands.FailDeliveryCommandHandler

	getOpenCartHandler      queries.GetOpenCartQueryHandler
	getCartItemsHandler     queries.GetCartItemsQueryHandler
	getCartTotalHandler     queries.GetCartTotalQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getOrdersInProcess      queries.GetOrdersInProcessQueryHandler
	getArchiveHandler       queries.GetArchiveQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	failDeliveryHandler commands.FailDeliveryCommandHandler,
	getOpenCartHandler queries.GetOpenCartQueryHandler,
	getCartItemsHandler queries.GetCartItemsQueryHandler,
	getCartTotalHandler queries.GetCartTotalQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getOrdersInProcess queries.GetOrdersInProcessQueryHandler,
	getArchiveHandler queries.GetArchiveQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:      addCartItemHandler,
		clearCartHandler:        clearCartHandler,
		confirmOrderHandler:     confirmOrderHandler,
		claimOrderHandler:       claimOrderHandler,
		confirmPickupHandler:    confirmPickupHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		failDeliveryHandler:     failDeliveryHandler,
		getOpenCartHandler:      getOpenCartHandler,
		getCartItemsHandler:     getCartItemsHandler,
		getCartTotalHandler:     getCartTotalHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		getOrdersInProcess:      getOrdersInProcess,
		getArchiveHandler:       getArchiveHandler,
	}
}

// RegisterRoutes mounts the ordering workflow under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/users/:user_id/cart/items", s.AddCartItem)
	api.GET("/users/:user_id/cart", s.GetOpenCart)
	api.DELETE("/users/:user_id/cart", s.ClearCart)
	api.POST("/users/:user_id/cart/confirm", s.ConfirmOrder)
	api.GET("/users/:user_id/orders", s.GetUserOrdersInProcess)
	api.GET("/users/:user_id/orders/archive", s.GetArchive)

	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:order_id/items", s.GetOrderItems)
	api.GET("/orders/:order_id/total", s.GetOrderTotal)
	api.POST("/orders/:order_id/claim", s.ClaimOrder)
	api.POST("/orders/:order_id/pickup", s.ConfirmPickup)
	api.POST("/orders/:order_id/complete", s.CompleteDelivery)
	api.POST("/orders/:order_id/fail", s.FailDelivery)

	api.GET("/deliverers/:deliverer_id/orders", s.GetDelivererOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddCartItem handles POST /api/v1/users/:user_id/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	branchID, err := kernel.UUIDFromBytes(req.BranchID)
	if err != nil {
		return badRequest(ctx, "invalid branch_id")
	}
	foodID, err := kernel.UUIDFromBytes(req.FoodID)
	if err != nil {
		return badRequest(ctx, "invalid food_id")
	}

	cmd, err := commands.NewAddCartItemCommand(userID, branchID, foodID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}
	result, err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AddCartItemResponse{
		CartID:       result.CartID.Bytes(),
		CartReplaced: result.CartReplaced,
		Line: CartLine{
			ID:       result.Line.ID().Bytes(),
			FoodID:   result.Line.FoodID().Bytes(),
			Quantity: result.Line.Quantity(),
			Price:    result.Line.Price().String(),
		},
	})
}

// GetOpenCart handles GET /api/v1/users/:user_id/cart.
func (s *Server) GetOpenCart(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	query, err := queries.NewGetOpenCartQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	resp, err := s.getOpenCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OpenCart{
		CartID:   resp.CartID.Bytes(),
		BranchID: resp.BranchID.Bytes(),
		Lines:    cartLinesFromQuery(resp.Lines),
		Total:    resp.Total.String(),
	})
}

// ClearCart handles DELETE /api/v1/users/:user_id/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	cmd, err := commands.NewClearCartCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/users/:user_id/cart/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	var req ConfirmOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	addressID, err := kernel.UUIDFromBytes(req.AddressID)
	if err != nil {
		return badRequest(ctx, "invalid address_id")
	}
	payment, err := cart.PaymentTypeFromString(req.PaymentType)
	if err != nil {
		return badRequest(ctx, "invalid payment_type")
	}

	cmd, err := commands.NewConfirmOrderCommand(userID, addressID, payment)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrdersInProcess handles GET /api/v1/users/:user_id/orders.
func (s *Server) GetUserOrdersInProcess(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	query, err := queries.NewGetOrdersInProcessQueryForUser(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	orders, err := s.getOrdersInProcess.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(orders))
}

// GetArchive handles GET /api/v1/users/:user_id/orders/archive.
func (s *Server) GetArchive(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}

	query, err := queries.NewGetArchiveQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	orders, err := s.getArchiveHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(orders))
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(orders))
}

// GetOrderItems handles GET /api/v1/orders/:order_id/items.
func (s *Server) GetOrderItems(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "invalid order_id")
	}

	query, err := queries.NewGetCartItemsQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	items, err := s.getCartItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartLinesFromQuery(items))
}

// GetOrderTotal handles GET /api/v1/orders/:order_id/total.
func (s *Server) GetOrderTotal(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "invalid order_id")
	}

	query, err := queries.NewGetCartTotalQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	total, err := s.getCartTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"total": total.String()})
}

// ClaimOrder handles POST /api/v1/orders/:order_id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, delivererID, ok, err := orderAction(ctx)
	if !ok {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, delivererID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/v1/orders/:order_id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	orderID, delivererID, ok, err := orderAction(ctx)
	if !ok {
		return err
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID, delivererID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:order_id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, delivererID, ok, err := orderAction(ctx)
	if !ok {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, delivererID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailDelivery handles POST /api/v1/orders/:order_id/fail.
func (s *Server) FailDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "invalid order_id")
	}

	var req FailDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	delivererID, err := kernel.UUIDFromBytes(req.DelivererID)
	if err != nil {
		return badRequest(ctx, "invalid deliverer_id")
	}

	cmd, err := commands.NewFailDeliveryCommand(orderID, delivererID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.failDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDelivererOrders handles GET /api/v1/deliverers/:deliverer_id/orders.
func (s *Server) GetDelivererOrders(ctx echo.Context) error {
	delivererID, err := pathUUID(ctx, "deliverer_id")
	if err != nil {
		return badRequest(ctx, "invalid deliverer_id")
	}

	query, err := queries.NewGetOrdersInProcessQueryForDeliverer(delivererID)
	if err != nil {
		return respondError(ctx, err)
	}
	orders, err := s.getOrdersInProcess.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(orders))
}

// orderAction parses the order path parameter and the acting deliverer from
// the request body. When ok is false the 400 response has already been
// written and the handler must return err as-is.
func orderAction(ctx echo.Context) (orderID, delivererID kernel.UUID, ok bool, err error) {
	orderID, parseErr := pathUUID(ctx, "order_id")
	if parseErr != nil {
		return kernel.UUID{}, kernel.UUID{}, false, badRequest(ctx, "invalid order_id")
	}

	var req DelivererAction
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return kernel.UUID{}, kernel.UUID{}, false, badRequest(ctx, "invalid request body")
	}
	delivererID, parseErr = kernel.UUIDFromBytes(req.DelivererID)
	if parseErr != nil {
		return kernel.UUID{}, kernel.UUID{}, false, badRequest(ctx, "invalid deliverer_id")
	}

	return orderID, delivererID, true, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	raw, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(raw)
}
