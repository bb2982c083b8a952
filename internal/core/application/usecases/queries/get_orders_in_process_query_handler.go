package queries

import (
	"context"

	"foodorder/internal/core/ports"
)

// GetOrdersInProcessQueryHandler reads unresolved orders for a user or a
// deliverer, depending on how the query was constructed.
type GetOrdersInProcessQueryHandler struct {
	orders ports.CustomerOrderRepository
}

// NewGetOrdersInProcessQueryHandler creates a handler for in-process reads.
func NewGetOrdersInProcessQueryHandler(orders ports.CustomerOrderRepository) GetOrdersInProcessQueryHandler {
	return GetOrdersInProcessQueryHandler{orders: orders}
}

// Handle retrieves the unresolved orders for the query's perspective.
// For a user: every confirmed order not yet delivered or failed. For a
// deliverer: the orders in YOUR_ORDER_RECEIVED or IN_TRANSIT on their hands.
func (h GetOrdersInProcessQueryHandler) Handle(ctx context.Context, query GetOrdersInProcessQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if userID := query.UserID(); userID != nil {
		inProcess, err := h.orders.GetInProcessByUser(ctx, *userID)
		if err != nil {
			return nil, err
		}
		return orderResponses(inProcess), nil
	}

	inProcess, err := h.orders.GetInProcessByDeliverer(ctx, *query.DelivererID())
	if err != nil {
		return nil, err
	}
	return orderResponses(inProcess), nil
}
