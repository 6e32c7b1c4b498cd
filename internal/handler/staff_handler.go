package handler

import (
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

type StaffHandler struct {
	staffSvc    service.StaffService
	customerSvc service.CustomerService
	activity    service.ActivityService
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewStaffHandler(
	staffSvc service.StaffService,
	customerSvc service.CustomerService,
	activity service.ActivityService,
	jwtSecret string,
	jwtTTL time.Duration,
) *StaffHandler {
	return &StaffHandler{
		staffSvc:    staffSvc,
		customerSvc: customerSvc,
		activity:    activity,
		jwtSecret:   jwtSecret,
		jwtTTL:      jwtTTL,
	}
}

func (h *StaffHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/auth/login", h.Login)
}

func (h *StaffHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/staff", h.ListStaff)
	admin.POST("/staff", h.CreateStaff)
	admin.GET("/staff/:id", h.GetStaff)
	admin.PATCH("/staff/:id", h.UpdateStaff)
	admin.POST("/staff/:id/deactivate", h.Deactivate)
	admin.DELETE("/staff/:id", h.DeleteStaff)

	admin.GET("/customers", h.ListCustomers)
	admin.GET("/customers/:id", h.GetCustomer)
	admin.GET("/customers/:id/bookings", h.CustomerBookings)

	admin.GET("/activity", h.ListActivity)
}

func (h *StaffHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	staff, err := h.staffSvc.VerifyCredentials(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	token, err := middleware.IssueToken(h.jwtSecret, staff, h.jwtTTL)
	if err != nil {
		return err
	}

	h.record(c, "staff", staff.ID, models.ActionLogin, &staff.ID, "staff login")
	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Staff: staff})
}

func (h *StaffHandler) ListStaff(c echo.Context) error {
	staff, err := h.staffSvc.ListStaff(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) CreateStaff(c echo.Context) error {
	var req dto.CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	staff, err := h.staffSvc.CreateStaff(c.Request().Context(), service.StaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, "staff", staff.ID, models.ActionCreate, middleware.StaffID(c), "staff "+staff.Email)
	return c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) GetStaff(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	staff, err := h.staffSvc.GetStaff(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) UpdateStaff(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Password != nil {
		fields["password"] = *req.Password
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	staff, err := h.staffSvc.UpdateStaff(c.Request().Context(), id, fields)
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, "staff", staff.ID, models.ActionUpdate, middleware.StaffID(c), "staff "+staff.Email)
	return c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Deactivate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.staffSvc.Deactivate(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	h.record(c, "staff", id, models.ActionUpdate, middleware.StaffID(c), "staff deactivated")
	return c.NoContent(http.StatusNoContent)
}

func (h *StaffHandler) DeleteStaff(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.staffSvc.DeleteStaff(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	h.record(c, "staff", id, models.ActionDelete, middleware.StaffID(c), "staff deleted")
	return c.NoContent(http.StatusNoContent)
}

func (h *StaffHandler) ListCustomers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	customers, err := h.customerSvc.ListCustomers(c.Request().Context(), c.QueryParam("search"), limit, offset)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *StaffHandler) GetCustomer(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerSvc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *StaffHandler) CustomerBookings(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	bookings, err := h.customerSvc.BookingHistory(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *StaffHandler) ListActivity(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	staffID, _ := strconv.Atoi(c.QueryParam("staff_id"))

	logs, err := h.activity.List(c.Request().Context(), repository.ActivityFilter{
		EntityType: c.QueryParam("entity_type"),
		StaffID:    uint(staffID),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *StaffHandler) record(c echo.Context, entity string, id uint, action models.ActivityAction, staffID *uint, details string) {
	if h.activity == nil {
		return
	}
	h.activity.Record(c.Request().Context(), entity, id, action, staffID, details, c.RealIP())
}
