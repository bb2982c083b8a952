package cart

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem is one food selection inside a customer order: a food reference,
// a quantity, and the computed total for the line.
//
// Invariants:
//   - quantity is at least 1
//   - price is the line total (unit price multiplied by quantity), never the
//     unit price alone
//   - a line belongs to exactly one customer order, and within that order at
//     most one line exists per food (repeat adds merge into the same line)
type LineItem struct {
	id              kernel.UUID
	createdAt       time.Time
	isDeleted       bool
	customerOrderID kernel.UUID
	foodID          kernel.UUID
	quantity        int
	price           kernel.Price

	isConstructed bool
}

// NewLineItem creates a line for the given food and quantity.
// The line total is derived from the supplied unit price.
func NewLineItem(id, customerOrderID, foodID kernel.UUID, quantity int, unitPrice kernel.Price) (*LineItem, error) {
	if err := errors.Join(
		id.Validate(),
		customerOrderID.Validate(),
		foodID.Validate(),
		unitPrice.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return &LineItem{
		id:              id,
		createdAt:       time.Now().UTC(),
		customerOrderID: customerOrderID,
		foodID:          foodID,
		quantity:        quantity,
		price:           unitPrice.MulQuantity(quantity),
		isConstructed:   true,
	}, nil
}

// RestoreLineItem rehydrates a line item from persistence without rederiving
// the price: the stored line total is taken as-is.
func RestoreLineItem(
	id kernel.UUID,
	createdAt time.Time,
	isDeleted bool,
	customerOrderID kernel.UUID,
	foodID kernel.UUID,
	quantity int,
	price kernel.Price,
) (*LineItem, error) {
	if err := errors.Join(
		id.Validate(),
		customerOrderID.Validate(),
		foodID.Validate(),
		price.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return &LineItem{
		id:              id,
		createdAt:       createdAt,
		isDeleted:       isDeleted,
		customerOrderID: customerOrderID,
		foodID:          foodID,
		quantity:        quantity,
		price:           price,
		isConstructed:   true,
	}, nil
}

// Validate ensures the LineItem was created through a constructor.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// Merge folds a repeat selection of the same food into this line.
// The new quantity is the old quantity plus addQuantity; the new line total
// is recomputed from the current unit price, not from the stored line price,
// so stale prices never compound.
func (l *LineItem) Merge(addQuantity int, unitPrice kernel.Price) error {
	if err := validateQuantity(addQuantity); err != nil {
		return err
	}
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	l.quantity += addQuantity
	l.price = unitPrice.MulQuantity(l.quantity)
	return nil
}

// IsEqual compares two line items by their unique identifiers.
func (l *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (l *LineItem) ID() kernel.UUID {
	return l.id
}

// CreatedAt returns the construction timestamp.
func (l *LineItem) CreatedAt() time.Time {
	return l.createdAt
}

// IsDeleted returns the soft-delete flag.
func (l *LineItem) IsDeleted() bool {
	return l.isDeleted
}

// CustomerOrderID returns the owning customer order's identifier.
func (l *LineItem) CustomerOrderID() kernel.UUID {
	return l.customerOrderID
}

// FoodID returns the selected food's identifier.
func (l *LineItem) FoodID() kernel.UUID {
	return l.foodID
}

// Quantity returns how many units of the food the line holds.
func (l *LineItem) Quantity() int {
	return l.quantity
}

// Price returns the line total.
func (l *LineItem) Price() kernel.Price {
	return l.price
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	if quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	return nil
}

// maxQuantity caps a single line. Orders beyond this size go through
// a different channel than the consumer app.
const maxQuantity = 1000
