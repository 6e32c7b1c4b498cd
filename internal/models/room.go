package models

import "time"

type RoomType string

const (
	RoomSingle       RoomType = "SINGLE"
	RoomDouble       RoomType = "DOUBLE"
	RoomSuite        RoomType = "SUITE"
	RoomDeluxe       RoomType = "DELUXE"
	RoomPresidential RoomType = "PRESIDENTIAL"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

type Room struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	RoomNumber string     `gorm:"uniqueIndex;size:20;not null" json:"room_number"`
	Type       RoomType   `gorm:"type:varchar(20);not null" json:"type"`
	Price      float64    `gorm:"not null" json:"price"`
	Capacity   int        `gorm:"not null" json:"capacity"`
	Status     RoomStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	Amenities  []string   `gorm:"serializer:json" json:"amenities"`
	Images     []string   `gorm:"serializer:json" json:"images"`
	Floor      *int       `json:"floor,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// PrimaryImage is the first image in the ordered list, if any.
func (r *Room) PrimaryImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}
