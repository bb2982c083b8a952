// Package itemrepo persists cart line items in a JSON file collection,
// handling the conversion between domain entities and their stored
// representations.
package itemrepo

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LineItemDTO is the stored shape of a line item record. The price field is
// the line total as a decimal string, unit price times quantity.
type LineItemDTO struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	IsDeleted       bool      `json:"is_deleted"`
	CustomerOrderID uuid.UUID `json:"customer_order_id"`
	FoodID          uuid.UUID `json:"food_id"`
	Quantity        int       `json:"quantity"`
	Price           string    `json:"price"`
}

// LineItemID extracts the identifier of a stored line item record.
func LineItemID(dto LineItemDTO) uuid.UUID {
	return dto.ID
}

// fromDomain converts a line item to its stored representation.
func fromDomain(line *cart.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:              line.ID().Bytes(),
		CreatedAt:       line.CreatedAt(),
		IsDeleted:       line.IsDeleted(),
		CustomerOrderID: line.CustomerOrderID().Bytes(),
		FoodID:          line.FoodID().Bytes(),
		Quantity:        line.Quantity(),
		Price:           line.Price().Decimal().String(),
	}
}

// toDomain converts a stored record back to a line item.
func toDomain(dto LineItemDTO) (*cart.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	customerOrderID, err := kernel.UUIDFromBytes(dto.CustomerOrderID)
	if err != nil {
		return nil, err
	}
	foodID, err := kernel.UUIDFromBytes(dto.FoodID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.PriceFromString(dto.Price)
	if err != nil {
		return nil, err
	}

	return cart.RestoreLineItem(id, dto.CreatedAt, dto.IsDeleted,
		customerOrderID, foodID, dto.Quantity, price)
}
