package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adeyemi-o/hotel-management/internal/dto"
	"github.com/adeyemi-o/hotel-management/internal/middleware"
	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/service"
)

type RoomHandler struct {
	svc      service.RoomService
	activity service.ActivityService
}

func NewRoomHandler(svc service.RoomService, activity service.ActivityService) *RoomHandler {
	return &RoomHandler{svc: svc, activity: activity}
}

func (h *RoomHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/rooms", h.ListRooms)
	admin.POST("/rooms", h.CreateRoom)
	admin.GET("/rooms/:id", h.GetRoom)
	admin.PATCH("/rooms/:id", h.UpdateRoom)
	admin.PUT("/rooms/:id/status", h.SetStatus)
	admin.DELETE("/rooms/:id", h.DeleteRoom)
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.svc.CreateRoom(c.Request().Context(), service.RoomInput{
		RoomNumber: req.RoomNumber,
		Type:       req.Type,
		Price:      req.Price,
		Capacity:   req.Capacity,
		Status:     req.Status,
		Amenities:  req.Amenities,
		Images:     req.Images,
		Floor:      req.Floor,
	})
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, room.ID, models.ActionCreate, "room "+room.RoomNumber)
	return c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	room, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := map[string]any{}
	if req.RoomNumber != nil {
		fields["room_number"] = *req.RoomNumber
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Amenities != nil {
		fields["amenities"] = req.Amenities
	}
	if req.Images != nil {
		fields["images"] = req.Images
	}
	if req.Floor != nil {
		fields["floor"] = *req.Floor
	}
	if len(fields) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	room, err := h.svc.UpdateRoom(c.Request().Context(), id, fields)
	if err != nil {
		return toHTTPError(err)
	}

	h.record(c, room.ID, models.ActionUpdate, "room "+room.RoomNumber)
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) SetStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		Status models.RoomStatus `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.svc.SetStatus(c.Request().Context(), id, req.Status); err != nil {
		return toHTTPError(err)
	}

	h.record(c, id, models.ActionUpdate, fmt.Sprintf("room status %s", req.Status))
	return c.NoContent(http.StatusNoContent)
}

func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	h.record(c, id, models.ActionDelete, "room deleted")
	return c.NoContent(http.StatusNoContent)
}

func (h *RoomHandler) record(c echo.Context, roomID uint, action models.ActivityAction, details string) {
	if h.activity == nil {
		return
	}
	h.activity.Record(c.Request().Context(), "room", roomID, action, middleware.StaffID(c), details, c.RealIP())
}
