package models

import "time"

type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusCheckedIn  BookingStatus = "CHECKED_IN"
	StatusCheckedOut BookingStatus = "CHECKED_OUT"
	StatusCancelled  BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentFailed   PaymentStatus = "FAILED"
)

type BookingSource string

const (
	SourceOnline BookingSource = "ONLINE"
	SourceManual BookingSource = "MANUAL"
	SourcePhone  BookingSource = "PHONE"
	SourceWalkIn BookingSource = "WALKIN"
)

type Booking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	BookingNumber string `gorm:"uniqueIndex;size:16;not null" json:"booking_number"`

	RoomID     uint `gorm:"not null;index" json:"room_id"`
	CustomerID uint `gorm:"not null;index" json:"customer_id"`

	CheckInDate  time.Time `gorm:"not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"not null" json:"check_out_date"`

	NumberOfGuests  int           `gorm:"not null" json:"number_of_guests"`
	TotalAmount     float64       `gorm:"not null" json:"total_amount"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Source          BookingSource `gorm:"type:varchar(10);not null;default:'ONLINE'" json:"source"`
	Status          BookingStatus `gorm:"type:varchar(15);not null;default:'CONFIRMED'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(10);not null;default:'PENDING'" json:"payment_status"`
	CreatedByID     *uint         `json:"created_by_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room      *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Customer  *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CreatedBy *Staff    `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// IsActive reports whether the booking counts against room availability.
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// BookingCounter backs the per-day booking-number sequence. One row per day,
// bumped atomically inside the booking transaction.
type BookingCounter struct {
	Day string `gorm:"primaryKey;size:8"` // yyyymmdd
	Seq int    `gorm:"not null"`
}
