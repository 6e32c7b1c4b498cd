package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adeyemi-o/hotel-management/internal/dto"
	"github.com/adeyemi-o/hotel-management/internal/middleware"
	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
	"github.com/adeyemi-o/hotel-management/internal/service"
)

type BookingHandler struct {
	svc      service.BookingService
	activity service.ActivityService
}

func NewBookingHandler(svc service.BookingService, activity service.ActivityService) *BookingHandler {
	return &BookingHandler{svc: svc, activity: activity}
}

func (h *BookingHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/bookings", h.ListBookings)
	admin.POST("/bookings", h.CreateBooking)
	admin.GET("/bookings/:id", h.GetBooking)
	admin.PATCH("/bookings/:id", h.UpdateBooking)
	admin.POST("/bookings/:id/check-in", h.CheckIn)
	admin.POST("/bookings/:id/check-out", h.CheckOut)
	admin.POST("/bookings/:id/cancel", h.CancelBooking)
	admin.GET("/calendar", h.Calendar)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	filter := repository.BookingFilter{
		Status:        models.BookingStatus(c.QueryParam("status")),
		PaymentStatus: models.PaymentStatus(c.QueryParam("payment_status")),
		Search:        c.QueryParam("search"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		filter.Offset = offset
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// CreateBooking is the admin/manual booking form; source defaults to MANUAL
// and the acting staff member is recorded.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	source := req.Source
	if source == "" {
		source = models.SourceManual
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		RoomID:          req.RoomID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumberOfGuests:  req.NumberOfGuests,
		TotalAmount:     req.TotalAmount,
		SpecialRequests: req.SpecialRequests,
		Source:          source,
		CreatedByID:     middleware.StaffID(c),
	})
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, booking, models.ActionCreate)
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), id, service.UpdateBookingInput{
		RoomID:          req.RoomID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumberOfGuests:  req.NumberOfGuests,
		TotalAmount:     req.TotalAmount,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, booking, models.ActionUpdate)
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CheckIn(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CheckIn(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, booking, models.ActionCheckIn)
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CheckOut(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CheckOut(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, booking, models.ActionCheckOut)
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, booking, models.ActionCancel)
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Calendar(c echo.Context) error {
	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid from date")
	}
	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid to date")
	}

	events, err := h.svc.GetCalendarEvents(c.Request().Context(), from, to)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *BookingHandler) record(c echo.Context, booking *models.Booking, action models.ActivityAction) {
	if h.activity == nil {
		return
	}
	h.activity.Record(
		c.Request().Context(),
		"booking",
		booking.ID,
		action,
		middleware.StaffID(c),
		fmt.Sprintf("booking %s", booking.BookingNumber),
		c.RealIP(),
	)
}
