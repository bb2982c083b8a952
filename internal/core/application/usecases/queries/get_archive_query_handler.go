package queries

import (
	"context"

	"foodorder/internal/core/ports"
)

// GetArchiveQueryHandler reads the user's delivered orders.
type GetArchiveQueryHandler struct {
	orders ports.CustomerOrderRepository
}

// NewGetArchiveQueryHandler creates a handler for archive reads.
func NewGetArchiveQueryHandler(orders ports.CustomerOrderRepository) GetArchiveQueryHandler {
	return GetArchiveQueryHandler{orders: orders}
}

// Handle retrieves every DELIVERED order of the user.
func (h GetArchiveQueryHandler) Handle(ctx context.Context, query GetArchiveQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	archived, err := h.orders.GetArchiveByUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}
	return orderResponses(archived), nil
}
