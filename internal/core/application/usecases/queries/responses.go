package queries

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartLineResponse represents one line of a cart in query results.
type CartLineResponse struct {
	ID       kernel.UUID
	FoodID   kernel.UUID
	Quantity int
	Price    kernel.Price
}

// OrderResponse represents a customer order in query results.
// Optional fields are nil for carts that were never confirmed or claimed.
type OrderResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	BranchID    kernel.UUID
	CreatedAt   time.Time
	Status      string
	Price       *kernel.Price
	PaymentType *string
	DelivererID *kernel.UUID
}

func lineResponse(line *cart.LineItem) CartLineResponse {
	return CartLineResponse{
		ID:       line.ID(),
		FoodID:   line.FoodID(),
		Quantity: line.Quantity(),
		Price:    line.Price(),
	}
}

func orderResponse(order *cart.CustomerOrder) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID(),
		UserID:    order.UserID(),
		BranchID:  order.BranchID(),
		CreatedAt: order.CreatedAt(),
		Status:    order.Status().String(),
		Price:     order.Price(),
	}

	if pt := order.PaymentType(); pt != nil {
		s := pt.String()
		resp.PaymentType = &s
	}
	resp.DelivererID = order.DelivererID()

	return resp
}

func orderResponses(orders []*cart.CustomerOrder) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, orderResponse(o))
	}
	return responses
}
