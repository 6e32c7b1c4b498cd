package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/adeyemi-o/hotel-management/internal/dto"
	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/service"
)

// PublicHandler serves the guest-facing surface: room browsing, the booking
// flow with hosted checkout, and booking lookup.
type PublicHandler struct {
	bookings service.BookingService
	rooms    service.RoomService
	payments service.PaymentService
}

func NewPublicHandler(bookings service.BookingService, rooms service.RoomService, payments service.PaymentService) *PublicHandler {
	return &PublicHandler{bookings: bookings, rooms: rooms, payments: payments}
}

func (h *PublicHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/available", h.ListAvailableRooms)
	api.GET("/rooms/:id", h.GetRoom)
	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/lookup", h.LookupBooking)
	api.GET("/payments/verify", h.VerifyPayment)
}

func (h *PublicHandler) ListRooms(c echo.Context) error {
	rooms, err := h.rooms.ListRooms(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *PublicHandler) ListAvailableRooms(c echo.Context) error {
	checkIn, err := time.Parse("2006-01-02", c.QueryParam("check_in"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_in date")
	}
	checkOut, err := time.Parse("2006-01-02", c.QueryParam("check_out"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_out date")
	}
	if !checkOut.After(checkIn) {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out must be after check_in")
	}

	rooms, err := h.rooms.ListAvailable(c.Request().Context(), checkIn, checkOut)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *PublicHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	room, err := h.rooms.GetRoom(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, room)
}

// CreateBooking runs the public flow: create the booking, then initialize a
// hosted payment session. If payment initialization fails, the booking is
// cancelled so no unpaid reservation blocks the room.
func (h *PublicHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	booking, err := h.bookings.CreateBooking(ctx, service.CreateBookingInput{
		RoomID:          req.RoomID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumberOfGuests:  req.NumberOfGuests,
		TotalAmount:     req.TotalAmount,
		SpecialRequests: req.SpecialRequests,
		Source:          models.SourceOnline,
	})
	if err != nil {
		return toHTTPError(err)
	}

	session, err := h.payments.Initialize(ctx, booking.ID)
	if err != nil {
		// Compensating action: release the room rather than keep an
		// unpayable reservation.
		if _, cancelErr := h.bookings.CancelBooking(ctx, booking.ID); cancelErr != nil {
			logrus.WithError(cancelErr).WithField("booking", booking.BookingNumber).
				Error("failed to cancel booking after payment init failure")
		}
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.PublicBookingResponse{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		Reference:     session.Reference,
		CheckoutURL:   session.CheckoutURL,
	})
}

func (h *PublicHandler) LookupBooking(c echo.Context) error {
	number := c.QueryParam("number")
	email := c.QueryParam("email")
	if number == "" || email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "number and email are required")
	}

	booking, err := h.bookings.FindByNumberAndEmail(c.Request().Context(), number, email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *PublicHandler) VerifyPayment(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reference is required")
	}

	result, err := h.payments.Verify(c.Request().Context(), reference)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}
