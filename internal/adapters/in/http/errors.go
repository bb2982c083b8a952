package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps application errors onto HTTP statuses. Validation errors
// are the caller's fault, not-found and conflicts get their dedicated codes,
// and an unreadable collection reports the store as unavailable.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusOf(err), Error{
		Code:    statusOf(err),
		Message: err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrDelivererIsBusy),
		errors.Is(err, cart.ErrWrongDeliverer):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrAddressNotOwned),
		errors.Is(err, queries.ErrCartHasNoLines):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrCollectionUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
