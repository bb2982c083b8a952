// Package cartrepo persists customer order aggregates and failure
// descriptions in JSON file collections, handling the conversion between
// domain entities and their stored representations.
package cartrepo

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerOrderDTO is the stored shape of a customer order record.
// Status and payment type are stored by their symbolic names and the price
// as a decimal string, so the files stay readable and diffable.
type CustomerOrderDTO struct {
	ID            uuid.UUID  `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	IsDeleted     bool       `json:"is_deleted"`
	UserID        uuid.UUID  `json:"user_id"`
	BranchID      uuid.UUID  `json:"branch_id"`
	AddressID     *uuid.UUID `json:"address_id,omitempty"`
	OrderStatus   string     `json:"order_status"`
	Price         *string    `json:"price,omitempty"`
	PaymentType   *string    `json:"payment_type,omitempty"`
	DelivererID   *uuid.UUID `json:"deliverer_id,omitempty"`
	DescriptionID *uuid.UUID `json:"description_id,omitempty"`
}

// DescriptionDTO is the stored shape of a failure description record.
type DescriptionDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	Text      string    `json:"text"`
}

// fromDomain converts a customer order aggregate to its stored representation.
func fromDomain(order *cart.CustomerOrder) CustomerOrderDTO {
	dto := CustomerOrderDTO{
		ID:          order.ID().Bytes(),
		CreatedAt:   order.CreatedAt(),
		IsDeleted:   order.IsDeleted(),
		UserID:      order.UserID().Bytes(),
		BranchID:    order.BranchID().Bytes(),
		OrderStatus: order.Status().String(),
	}

	if id := order.AddressID(); id != nil {
		raw := id.Bytes()
		dto.AddressID = &raw
	}
	if p := order.Price(); p != nil {
		s := p.Decimal().String()
		dto.Price = &s
	}
	if pt := order.PaymentType(); pt != nil {
		s := pt.String()
		dto.PaymentType = &s
	}
	if id := order.DelivererID(); id != nil {
		raw := id.Bytes()
		dto.DelivererID = &raw
	}
	if id := order.DescriptionID(); id != nil {
		raw := id.Bytes()
		dto.DescriptionID = &raw
	}

	return dto
}

// toDomain converts a stored record back to a customer order aggregate,
// reconstructing it through RestoreCustomerOrder so the status consistency
// rules apply to whatever the file holds.
func toDomain(dto CustomerOrderDTO) (*cart.CustomerOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID)
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFromBytes(dto.BranchID)
	if err != nil {
		return nil, err
	}
	status, err := cart.StatusFromString(dto.OrderStatus)
	if err != nil {
		return nil, err
	}

	addressID, err := optionalUUID(dto.AddressID)
	if err != nil {
		return nil, err
	}
	delivererID, err := optionalUUID(dto.DelivererID)
	if err != nil {
		return nil, err
	}
	descriptionID, err := optionalUUID(dto.DescriptionID)
	if err != nil {
		return nil, err
	}

	var price *kernel.Price
	if dto.Price != nil {
		p, priceErr := kernel.PriceFromString(*dto.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &p
	}

	var paymentType *cart.PaymentType
	if dto.PaymentType != nil {
		pt, ptErr := cart.PaymentTypeFromString(*dto.PaymentType)
		if ptErr != nil {
			return nil, ptErr
		}
		paymentType = &pt
	}

	return cart.RestoreCustomerOrder(id, dto.CreatedAt, dto.IsDeleted,
		userID, branchID, addressID, status, price, paymentType, delivererID, descriptionID)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// descriptionFromDomain converts a description to its stored representation.
func descriptionFromDomain(d *cart.Description) DescriptionDTO {
	return DescriptionDTO{
		ID:        d.ID().Bytes(),
		CreatedAt: d.CreatedAt(),
		IsDeleted: d.IsDeleted(),
		Text:      d.Text(),
	}
}

// descriptionToDomain converts a stored record back to a description.
func descriptionToDomain(dto DescriptionDTO) (*cart.Description, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	return cart.RestoreDescription(id, dto.CreatedAt, dto.IsDeleted, dto.Text)
}
