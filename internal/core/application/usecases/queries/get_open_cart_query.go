package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetOpenCartQueryIsNotConstructed = errors.New(
	"GetOpenCartQuery must be created via NewGetOpenCartQuery constructor",
)

// GetOpenCartQuery retrieves the user's open cart with its lines and the
// running total.
//
// Example:
//
//	query, err := NewGetOpenCartQuery(userID)
//	if err != nil {
//	    return err
//	}
//	cart, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("cart is empty")
//	}
type GetOpenCartQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOpenCartQuery creates a query for the user's open cart.
func NewGetOpenCartQuery(userID kernel.UUID) (GetOpenCartQuery, error) {
	cartQuery := GetOpenCartQuery{guard: guard.NewConstructorGuard()}

	if err := userID.Validate(); err != nil {
		return GetOpenCartQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	cartQuery.userID = userID

	return cartQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenCartQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenCartQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q GetOpenCartQuery) UserID() kernel.UUID {
	return q.userID
}

// GetOpenCartQueryResponse represents the open cart: its header fields, its
// lines, and the sum of the line totals.
type GetOpenCartQueryResponse struct {
	CartID   kernel.UUID
	BranchID kernel.UUID
	Lines    []CartLineResponse
	Total    kernel.Price
}
