package queries

import (
	"context"

	"foodorder/internal/core/ports"
)

// GetPendingOrdersQueryHandler reads the claimable pool.
type GetPendingOrdersQueryHandler struct {
	orders ports.CustomerOrderRepository
}

// NewGetPendingOrdersQueryHandler creates a handler for pool reads.
func NewGetPendingOrdersQueryHandler(orders ports.CustomerOrderRepository) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{orders: orders}
}

// Handle retrieves every order in LOOKING_FOR_A_DELIVERER status with no
// deliverer assigned, oldest first.
func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending, err := h.orders.GetAllPending(ctx)
	if err != nil {
		return nil, err
	}
	return orderResponses(pending), nil
}
