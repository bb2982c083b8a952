package accountrepo

import (
	"context"
	"errors"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// UserRepository implements UserRepository on a JSON file collection.
type UserRepository struct {
	users *jsonstore.Collection[UserDTO]
}

// NewUserRepository creates a user repository over the given collection.
func NewUserRepository(users *jsonstore.Collection[UserDTO]) *UserRepository {
	return &UserRepository{users: users}
}

// Add saves a new user.
func (r *UserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return r.users.Add(ctx, userFromDomain(user))
}

// Get retrieves a user by ID.
func (r *UserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.users.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}
	return userToDomain(dto)
}

// AddressRepository implements AddressRepository on a JSON file collection.
type AddressRepository struct {
	addresses *jsonstore.Collection[AddressDTO]
}

// NewAddressRepository creates an address repository over the given
// collection.
func NewAddressRepository(addresses *jsonstore.Collection[AddressDTO]) *AddressRepository {
	return &AddressRepository{addresses: addresses}
}

// Add saves a new address.
func (r *AddressRepository) Add(ctx context.Context, address *account.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	return r.addresses.Add(ctx, addressFromDomain(address))
}

// Get retrieves an address by ID.
func (r *AddressRepository) Get(ctx context.Context, id kernel.UUID) (*account.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.addresses.GetByID(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}
	return addressToDomain(dto)
}

// GetAllByUser retrieves the user's address book in file order.
func (r *AddressRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*account.Address, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	raw := userID.Bytes()
	dtos, err := r.addresses.FindAll(ctx, func(d AddressDTO) bool {
		return d.UserID == raw
	})
	if err != nil {
		return nil, err
	}

	addresses := make([]*account.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, mapErr := addressToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}
