package catalog

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrBranchIsNotConstructed is returned when a Branch was not created through
// NewBranch or RestoreBranch.
var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or RestoreBranch")

// Branch is a brand's physical outlet. A cart is always scoped to exactly
// one branch.
type Branch struct {
	id        kernel.UUID
	createdAt time.Time
	isDeleted bool
	brandID   kernel.UUID
	name      string
	address   string

	isConstructed bool
}

// NewBranch creates a branch of the given brand.
func NewBranch(id, brandID kernel.UUID, name, address string) (*Branch, error) {
	if err := errors.Join(id.Validate(), brandID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Branch{
		id:            id,
		createdAt:     time.Now().UTC(),
		brandID:       brandID,
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

// RestoreBranch rehydrates a branch from persistence.
func RestoreBranch(id kernel.UUID, createdAt time.Time, isDeleted bool, brandID kernel.UUID, name, address string) (*Branch, error) {
	if err := errors.Join(id.Validate(), brandID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Branch{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		brandID:       brandID,
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Branch was created through a constructor.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID { return b.id }

// CreatedAt returns the construction timestamp.
func (b *Branch) CreatedAt() time.Time { return b.createdAt }

// IsDeleted returns the soft-delete flag.
func (b *Branch) IsDeleted() bool { return b.isDeleted }

// BrandID returns the owning brand's identifier.
func (b *Branch) BrandID() kernel.UUID { return b.brandID }

// Name returns the branch name.
func (b *Branch) Name() string { return b.name }

// Address returns the branch's street address.
func (b *Branch) Address() string { return b.address }
