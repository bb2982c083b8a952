package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrdersInProcessQueryIsNotConstructed = errors.New(
	"GetOrdersInProcessQuery must be created via one of its constructors",
)

// GetOrdersInProcessQuery retrieves unresolved orders from one of two
// perspectives: a user watching their confirmed orders travel, or a
// deliverer listing the orders currently on their hands.
type GetOrdersInProcessQuery struct { //nolint:recvcheck //using for validation
	userID      *kernel.UUID
	delivererID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersInProcessQueryForUser creates a query for the user's
// confirmed but undelivered orders.
func NewGetOrdersInProcessQueryForUser(userID kernel.UUID) (GetOrdersInProcessQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersInProcessQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	return GetOrdersInProcessQuery{
		userID: &userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrdersInProcessQueryForDeliverer creates a query for the orders the
// deliverer is actively carrying.
func NewGetOrdersInProcessQueryForDeliverer(delivererID kernel.UUID) (GetOrdersInProcessQuery, error) {
	if err := delivererID.Validate(); err != nil {
		return GetOrdersInProcessQuery{}, errs.NewValueIsRequiredErrorWithCause("delivererID", err)
	}

	return GetOrdersInProcessQuery{
		delivererID: &delivererID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersInProcessQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersInProcessQueryIsNotConstructed)
}

// UserID returns the user perspective, or nil for deliverer queries.
func (q GetOrdersInProcessQuery) UserID() *kernel.UUID {
	return q.userID
}

// DelivererID returns the deliverer perspective, or nil for user queries.
func (q GetOrdersInProcessQuery) DelivererID() *kernel.UUID {
	return q.delivererID
}
