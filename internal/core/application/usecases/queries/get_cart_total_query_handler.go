package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// ErrCartHasNoLines is returned when a total is requested for an order
// without any lines; there is nothing to sum.
var ErrCartHasNoLines = errors.New("order has no lines")

// GetCartTotalQueryHandler computes the total of a customer order.
// The total is always the sum over all the order's line totals, each of
// which is the food's unit price times the line quantity.
type GetCartTotalQueryHandler struct {
	lines ports.LineItemRepository
}

// NewGetCartTotalQueryHandler creates a handler for cart total reads.
func NewGetCartTotalQueryHandler(lines ports.LineItemRepository) GetCartTotalQueryHandler {
	return GetCartTotalQueryHandler{lines: lines}
}

// Handle sums the order's line totals.
func (h GetCartTotalQueryHandler) Handle(ctx context.Context, query GetCartTotalQuery) (kernel.Price, error) {
	if err := query.Validate(); err != nil {
		return kernel.Price{}, err
	}

	cartLines, err := h.lines.GetAllByOrder(ctx, query.CustomerOrderID())
	if err != nil {
		return kernel.Price{}, err
	}
	if len(cartLines) == 0 {
		return kernel.Price{}, ErrCartHasNoLines
	}

	total := cartLines[0].Price()
	for _, line := range cartLines[1:] {
		total = total.Add(line.Price())
	}
	return total, nil
}
