package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adeyemi-o/hotel-management/internal/service"
)

// toHTTPError maps service sentinel errors onto HTTP status codes. Anything
// unmapped surfaces as a 500 through the error-handler middleware.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrStaffNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrInvalidDates),
		errors.Is(err, service.ErrCheckInPast),
		errors.Is(err, service.ErrInvalidRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrRoomUnavailable),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrAlreadyCheckedOut),
		errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrRoomNumberTaken),
		errors.Is(err, service.ErrRoomHasActiveBookings),
		errors.Is(err, service.ErrStaffEmailTaken),
		errors.Is(err, service.ErrStaffHasRecords):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrStaffInactive):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrGateway):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
