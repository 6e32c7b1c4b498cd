package dto

import (
	"time"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

type BookingResponse struct {
	ID              uint                 `json:"id"`
	BookingNumber   string               `json:"booking_number"`
	RoomID          uint                 `json:"room_id"`
	RoomNumber      string               `json:"room_number,omitempty"`
	RoomType        models.RoomType      `json:"room_type,omitempty"`
	CustomerName    string               `json:"customer_name,omitempty"`
	CustomerEmail   string               `json:"customer_email,omitempty"`
	CheckInDate     time.Time            `json:"check_in_date"`
	CheckOutDate    time.Time            `json:"check_out_date"`
	NumberOfGuests  int                  `json:"number_of_guests"`
	TotalAmount     float64              `json:"total_amount"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	Source          models.BookingSource `json:"source"`
	Status          models.BookingStatus `json:"status"`
	PaymentStatus   models.PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time            `json:"created_at"`
}

// PublicBookingResponse is the public create-booking reply: identifiers plus
// the hosted checkout redirect.
type PublicBookingResponse struct {
	BookingID     uint   `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	Reference     string `json:"payment_reference,omitempty"`
	CheckoutURL   string `json:"checkout_url,omitempty"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Staff *models.Staff `json:"staff"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		BookingNumber:   b.BookingNumber,
		RoomID:          b.RoomID,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		NumberOfGuests:  b.NumberOfGuests,
		TotalAmount:     b.TotalAmount,
		SpecialRequests: b.SpecialRequests,
		Source:          b.Source,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		CreatedAt:       b.CreatedAt,
	}
	if b.Room != nil {
		resp.RoomNumber = b.Room.RoomNumber
		resp.RoomType = b.Room.Type
	}
	if b.Customer != nil {
		resp.CustomerName = b.Customer.Name
		resp.CustomerEmail = b.Customer.Email
	}
	return resp
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return out
}
