package models

import "time"

type PaymentMethod string

const (
	MethodCard     PaymentMethod = "CARD"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodCash     PaymentMethod = "CASH"
	MethodUSSD     PaymentMethod = "USSD"
)

type Payment struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	BookingID uint          `gorm:"not null;index" json:"booking_id"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Method    PaymentMethod `gorm:"type:varchar(10);not null;default:'CARD'" json:"method"`
	Status    PaymentStatus `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
	Reference string        `gorm:"uniqueIndex;size:64;not null" json:"reference"`
	// GatewayRef is the transaction reference assigned by the payment gateway.
	GatewayRef string     `gorm:"size:64" json:"gateway_ref,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
