package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetCartTotalQueryIsNotConstructed = errors.New(
	"GetCartTotalQuery must be created via NewGetCartTotalQuery constructor",
)

// GetCartTotalQuery retrieves the total price of a customer order, summed
// over every line in it.
type GetCartTotalQuery struct { //nolint:recvcheck //using for validation
	customerOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartTotalQuery creates a query for a customer order's total.
func NewGetCartTotalQuery(customerOrderID kernel.UUID) (GetCartTotalQuery, error) {
	totalQuery := GetCartTotalQuery{guard: guard.NewConstructorGuard()}

	if err := customerOrderID.Validate(); err != nil {
		return GetCartTotalQuery{}, errs.NewValueIsRequiredErrorWithCause("customerOrderID", err)
	}
	totalQuery.customerOrderID = customerOrderID

	return totalQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetCartTotalQueryIsNotConstructed)
}

// CustomerOrderID returns the order whose total is requested.
func (q GetCartTotalQuery) CustomerOrderID() kernel.UUID {
	return q.customerOrderID
}
