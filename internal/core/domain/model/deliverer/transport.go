package deliverer

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrTransportIsNotConstructed is returned when a Transport was not created
// through NewTransport or RestoreTransport.
var ErrTransportIsNotConstructed = errors.New("Transport must be created via NewTransport or RestoreTransport")

// Speed bounds for a transport, in km/h. A bicycle sits near the minimum,
// a car near the maximum.
const (
	MinTransportSpeed = 1
	MaxTransportSpeed = 120
)

// Transport is a vehicle type a deliverer rides: its name and average speed.
// Speed is what the dispatcher ranks free deliverers by.
type Transport struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	name      string
	speed     int

	isConstructed bool
}

// NewTransport creates a transport with the given name and average speed.
func NewTransport(id kernel.UUID, name string, speed int) (*Transport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if speed < MinTransportSpeed || speed > MaxTransportSpeed {
		return nil, errs.NewValueIsOutOfRangeError("speed", speed, MinTransportSpeed, MaxTransportSpeed)
	}

	return &Transport{
		id:            id,
		createdAt:     time.Now().UTC(),
		name:          name,
		speed:         speed,
		isConstructed: true,
	}, nil
}

// RestoreTransport rehydrates a transport from persistence.
func RestoreTransport(id kernel.UUID, createdAt time.Time, isDeleted bool, name string, speed int) (*Transport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if speed < MinTransportSpeed || speed > MaxTransportSpeed {
		return nil, errs.NewValueIsOutOfRangeError("speed", speed, MinTransportSpeed, MaxTransportSpeed)
	}

	return &Transport{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		name:          name,
		speed:         speed,
		isConstructed: true,
	}, nil
}

// Validate ensures the Transport was created through a constructor.
func (t *Transport) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransportIsNotConstructed
	}
	return nil
}

// ID returns the transport's unique identifier.
func (t *Transport) ID() kernel.UUID { return t.id }

// CreatedAt returns the construction timestamp.
func (t *Transport) CreatedAt() time.Time { return t.createdAt }

// IsDeleted returns the soft-delete flag.
func (t *Transport) IsDeleted() bool { return t.isDeleted }

// Name returns the transport name, e.g. "bicycle".
func (t *Transport) Name() string { return t.name }

// Speed returns the transport's average speed in km/h.
func (t *Transport) Speed() int { return t.speed }
