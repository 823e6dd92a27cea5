package http

import (
	"errors"
	"net/http"

	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/generated/servers"
	"lockerroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps core errors to HTTP status codes. Anything unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, locker.ErrAlreadyReserved),
		errors.Is(err, locker.ErrAlreadyOccupied),
		errors.Is(err, locker.ErrAlreadyAvailable),
		errors.Is(err, locker.ErrExtensionDeclined),
		errors.Is(err, locker.ErrNoPendingExtension):
		return http.StatusConflict
	case errors.Is(err, locker.ErrCheckInTimeNotFuture):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes err as a servers.Error. Domain errors carry their own message;
// internal ones are replaced by fallback so nothing leaks to the client.
func errorResponse(ctx echo.Context, err error, fallback string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = fallback
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// rejectInput answers a request whose parameters failed validation. Parameters naming a
// locker that cannot exist map to 404 like any other lookup; the rest are 400.
func rejectInput(ctx echo.Context, prefix string, err error) error {
	code := statusFor(err)
	if code != http.StatusNotFound {
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: prefix + ": " + err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
