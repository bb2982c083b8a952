package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetArchiveQueryIsNotConstructed = errors.New(
	"GetArchiveQuery must be created via NewGetArchiveQuery constructor",
)

// GetArchiveQuery retrieves the user's delivered orders.
type GetArchiveQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetArchiveQuery creates a query for the user's order archive.
func NewGetArchiveQuery(userID kernel.UUID) (GetArchiveQuery, error) {
	archiveQuery := GetArchiveQuery{guard: guard.NewConstructorGuard()}

	if err := userID.Validate(); err != nil {
		return GetArchiveQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	archiveQuery.userID = userID

	return archiveQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArchiveQuery) Validate() error {
	return q.guard.Validate(ErrGetArchiveQueryIsNotConstructed)
}

// UserID returns the archive owner's identifier.
func (q GetArchiveQuery) UserID() kernel.UUID {
	return q.userID
}
