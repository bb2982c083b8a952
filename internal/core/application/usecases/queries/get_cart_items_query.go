package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetCartItemsQueryIsNotConstructed = errors.New(
	"GetCartItemsQuery must be created via NewGetCartItemsQuery constructor",
)

// GetCartItemsQuery retrieves the lines of a customer order, open or
// confirmed.
type GetCartItemsQuery struct { //nolint:recvcheck //using for validation
	customerOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartItemsQuery creates a query for a customer order's lines.
func NewGetCartItemsQuery(customerOrderID kernel.UUID) (GetCartItemsQuery, error) {
	itemsQuery := GetCartItemsQuery{guard: guard.NewConstructorGuard()}

	if err := customerOrderID.Validate(); err != nil {
		return GetCartItemsQuery{}, errs.NewValueIsRequiredErrorWithCause("customerOrderID", err)
	}
	itemsQuery.customerOrderID = customerOrderID

	return itemsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetCartItemsQueryIsNotConstructed)
}

// CustomerOrderID returns the order whose lines are requested.
func (q GetCartItemsQuery) CustomerOrderID() kernel.UUID {
	return q.customerOrderID
}
