// Package deliverer contains the Deliverer entity and the Transport it rides.
// A deliverer claims confirmed orders from the pool and may work at most one
// order at a time; transport speed feeds the dispatcher's ranking.
package deliverer

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrDelivererIsNotConstructed is returned when a Deliverer was not created
// through NewDeliverer or RestoreDeliverer.
var ErrDelivererIsNotConstructed = errors.New("Deliverer must be created via NewDeliverer or RestoreDeliverer")

// Deliverer is a courier account that claims and fulfills confirmed orders.
type Deliverer struct {
	id          kernel.UUID
	createdAt   time.Time
	isDeleted   bool
	name        string
	phone       string
	transportID kernel.UUID

	isConstructed bool
}

// NewDeliverer creates a deliverer riding the given transport.
func NewDeliverer(id kernel.UUID, name, phone string, transportID kernel.UUID) (*Deliverer, error) {
	if err := errors.Join(id.Validate(), transportID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Deliverer{
		id:            id,
		createdAt:     time.Now().UTC(),
		name:          name,
		phone:         phone,
		transportID:   transportID,
		isConstructed: true,
	}, nil
}

// RestoreDeliverer rehydrates a deliverer from persistence.
func RestoreDeliverer(
	id kernel.UUID,
	createdAt time.Time,
	isDeleted bool,
	name, phone string,
	transportID kernel.UUID,
) (*Deliverer, error) {
	if err := errors.Join(id.Validate(), transportID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Deliverer{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		name:          name,
		phone:         phone,
		transportID:   transportID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Deliverer was created through a constructor.
func (d *Deliverer) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDelivererIsNotConstructed
	}
	return nil
}

// ID returns the deliverer's unique identifier.
func (d *Deliverer) ID() kernel.UUID { return d.id }

// CreatedAt returns the construction timestamp.
func (d *Deliverer) CreatedAt() time.Time { return d.createdAt }

// IsDeleted returns the soft-delete flag.
func (d *Deliverer) IsDeleted() bool { return d.isDeleted }

// Name returns the deliverer's display name.
func (d *Deliverer) Name() string { return d.name }

// Phone returns the deliverer's contact phone.
func (d *Deliverer) Phone() string { return d.phone }

// TransportID returns the identifier of the deliverer's transport.
func (d *Deliverer) TransportID() kernel.UUID { return d.transportID }
