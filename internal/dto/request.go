package dto

import (
	"time"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

type CreateBookingRequest struct {
	RoomID          uint      `json:"room_id" validate:"required"`
	CustomerName    string    `json:"customer_name" validate:"required"`
	CustomerEmail   string    `json:"customer_email" validate:"required,email"`
	CustomerPhone   string    `json:"customer_phone"`
	CheckInDate     time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate    time.Time `json:"check_out_date" validate:"required,gtfield=CheckInDate"`
	NumberOfGuests  int       `json:"number_of_guests" validate:"required,gte=1,lte=20"`
	TotalAmount     float64   `json:"total_amount" validate:"required,gt=0"`
	SpecialRequests string    `json:"special_requests"`
	// Source is honored on the admin surface only; public bookings are ONLINE.
	Source models.BookingSource `json:"source" validate:"omitempty,oneof=ONLINE MANUAL PHONE WALKIN"`
}

type UpdateBookingRequest struct {
	RoomID          *uint      `json:"room_id"`
	CheckInDate     *time.Time `json:"check_in_date"`
	CheckOutDate    *time.Time `json:"check_out_date"`
	NumberOfGuests  *int       `json:"number_of_guests" validate:"omitempty,gte=1,lte=20"`
	TotalAmount     *float64   `json:"total_amount" validate:"omitempty,gt=0"`
	SpecialRequests *string    `json:"special_requests"`
}

type CreateRoomRequest struct {
	RoomNumber string            `json:"room_number" validate:"required,room_number"`
	Type       models.RoomType   `json:"type" validate:"required,oneof=SINGLE DOUBLE SUITE DELUXE PRESIDENTIAL"`
	Price      float64           `json:"price" validate:"required,gt=0"`
	Capacity   int               `json:"capacity" validate:"required,gte=1,lte=20"`
	Status     models.RoomStatus `json:"status" validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Amenities  []string          `json:"amenities"`
	Images     []string          `json:"images"`
	Floor      *int              `json:"floor"`
}

type UpdateRoomRequest struct {
	RoomNumber *string            `json:"room_number" validate:"omitempty,room_number"`
	Type       *models.RoomType   `json:"type" validate:"omitempty,oneof=SINGLE DOUBLE SUITE DELUXE PRESIDENTIAL"`
	Price      *float64           `json:"price" validate:"omitempty,gt=0"`
	Capacity   *int               `json:"capacity" validate:"omitempty,gte=1,lte=20"`
	Status     *models.RoomStatus `json:"status" validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Amenities  []string           `json:"amenities"`
	Images     []string           `json:"images"`
	Floor      *int               `json:"floor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateStaffRequest struct {
	Name     string           `json:"name" validate:"required"`
	Email    string           `json:"email" validate:"required,email"`
	Role     models.StaffRole `json:"role" validate:"required,oneof=MANAGER RECEPTIONIST CLEANER"`
	Password string           `json:"password" validate:"required,min=8"`
}

type UpdateStaffRequest struct {
	Name     *string           `json:"name"`
	Email    *string           `json:"email" validate:"omitempty,email"`
	Role     *models.StaffRole `json:"role" validate:"omitempty,oneof=MANAGER RECEPTIONIST CLEANER"`
	Password *string           `json:"password" validate:"omitempty,min=8"`
	IsActive *bool             `json:"is_active"`
}
