package queries

import (
	"context"

	"foodorder/internal/core/ports"
)

// GetCartItemsQueryHandler reads the lines of a customer order.
type GetCartItemsQueryHandler struct {
	lines ports.LineItemRepository
}

// NewGetCartItemsQueryHandler creates a handler for cart line reads.
func NewGetCartItemsQueryHandler(lines ports.LineItemRepository) GetCartItemsQueryHandler {
	return GetCartItemsQueryHandler{lines: lines}
}

// Handle retrieves the order's lines in insertion order.
// An order without lines yields an empty slice, not an error.
func (h GetCartItemsQueryHandler) Handle(ctx context.Context, query GetCartItemsQuery) ([]CartLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cartLines, err := h.lines.GetAllByOrder(ctx, query.CustomerOrderID())
	if err != nil {
		return nil, err
	}

	responses := make([]CartLineResponse, 0, len(cartLines))
	for _, line := range cartLines {
		responses = append(responses, lineResponse(line))
	}
	return responses, nil
}
