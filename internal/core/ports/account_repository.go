package ports

import (
	"context"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for platform users.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, user *account.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
}

// AddressRepository defines the persistence contract for user addresses.
type AddressRepository interface {
	// Add persists a new address.
	Add(ctx context.Context, address *account.Address) error

	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Address, error)

	// GetAllByUser retrieves the user's address book.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*account.Address, error)
}

// DelivererRepository defines the persistence contract for deliverers.
type DelivererRepository interface {
	// Add persists a new deliverer.
	Add(ctx context.Context, d *deliverer.Deliverer) error

	// Get retrieves a deliverer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error)

	// GetAll retrieves every deliverer.
	GetAll(ctx context.Context) ([]*deliverer.Deliverer, error)
}

// TransportRepository defines the persistence contract for transports.
type TransportRepository interface {
	// Add persists a new transport.
	Add(ctx context.Context, t *deliverer.Transport) error

	// Get retrieves a transport by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverer.Transport, error)

	// GetAll retrieves every transport.
	GetAll(ctx context.Context) ([]*deliverer.Transport, error)
}
