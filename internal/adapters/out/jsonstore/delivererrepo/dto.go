// Package delivererrepo persists deliverers and their transports in JSON
// file collections.
package delivererrepo

import (
	"time"

	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DelivererDTO is the stored shape of a deliverer record.
type DelivererDTO struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	IsDeleted   bool      `json:"is_deleted"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	TransportID uuid.UUID `json:"transport_id"`
}

// TransportDTO is the stored shape of a transport record.
type TransportDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
	Name      string    `json:"name"`
	Speed     int       `json:"speed"`
}

// DelivererID extracts the identifier of a stored deliverer record.
func DelivererID(dto DelivererDTO) uuid.UUID { return dto.ID }

// TransportID extracts the identifier of a stored transport record.
func TransportID(dto TransportDTO) uuid.UUID { return dto.ID }

func delivererFromDomain(d *deliverer.Deliverer) DelivererDTO {
	return DelivererDTO{
		ID:          d.ID().Bytes(),
		CreatedAt:   d.CreatedAt(),
		IsDeleted:   d.IsDeleted(),
		Name:        d.Name(),
		Phone:       d.Phone(),
		TransportID: d.TransportID().Bytes(),
	}
}

func delivererToDomain(dto DelivererDTO) (*deliverer.Deliverer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	transportID, err := kernel.UUIDFromBytes(dto.TransportID)
	if err != nil {
		return nil, err
	}
	return deliverer.RestoreDeliverer(id, dto.CreatedAt, dto.IsDeleted, dto.Name, dto.Phone, transportID)
}

func transportFromDomain(t *deliverer.Transport) TransportDTO {
	return TransportDTO{
		ID:        t.ID().Bytes(),
		CreatedAt: t.CreatedAt(),
		IsDeleted: t.IsDeleted(),
		Name:      t.Name(),
		Speed:     t.Speed(),
	}
}

func transportToDomain(dto TransportDTO) (*deliverer.Transport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	return deliverer.RestoreTransport(id, dto.CreatedAt, dto.IsDeleted, dto.Name, dto.Speed)
}
