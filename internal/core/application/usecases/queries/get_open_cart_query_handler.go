package queries

import (
	"context"

	"foodorder/internal/core/ports"
)

// GetOpenCartQueryHandler reads the user's open cart.
type GetOpenCartQueryHandler struct {
	orders ports.CustomerOrderRepository
	lines  ports.LineItemRepository
}

// NewGetOpenCartQueryHandler creates a handler for open cart reads.
func NewGetOpenCartQueryHandler(
	orders ports.CustomerOrderRepository,
	lines ports.LineItemRepository,
) GetOpenCartQueryHandler {
	return GetOpenCartQueryHandler{
		orders: orders,
		lines:  lines,
	}
}

// Handle retrieves the open cart with its lines and running total.
// Returns an error unwrapping to errs.ErrObjectNotFound when the user has no
// open cart. A cart without lines has a zero-valued total.
func (h GetOpenCartQueryHandler) Handle(ctx context.Context, query GetOpenCartQuery) (GetOpenCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOpenCartQueryResponse{}, err
	}

	open, err := h.orders.GetOpenByUser(ctx, query.UserID())
	if err != nil {
		return GetOpenCartQueryResponse{}, err
	}

	cartLines, err := h.lines.GetAllByOrder(ctx, open.ID())
	if err != nil {
		return GetOpenCartQueryResponse{}, err
	}

	resp := GetOpenCartQueryResponse{
		CartID:   open.ID(),
		BranchID: open.BranchID(),
		Lines:    make([]CartLineResponse, 0, len(cartLines)),
	}
	for i, line := range cartLines {
		resp.Lines = append(resp.Lines, lineResponse(line))
		if i == 0 {
			resp.Total = line.Price()
			continue
		}
		resp.Total = resp.Total.Add(line.Price())
	}

	return resp, nil
}
