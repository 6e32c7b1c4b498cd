package models

import "time"

type ActivityAction string

const (
	ActionCreate   ActivityAction = "CREATE"
	ActionUpdate   ActivityAction = "UPDATE"
	ActionDelete   ActivityAction = "DELETE"
	ActionCheckIn  ActivityAction = "CHECK_IN"
	ActionCheckOut ActivityAction = "CHECK_OUT"
	ActionCancel   ActivityAction = "CANCEL"
	ActionLogin    ActivityAction = "LOGIN"
)

// ActivityLog is an append-only audit record. Rows are never updated or
// deleted once written.
type ActivityLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	EntityType string         `gorm:"size:30;not null;index" json:"entity_type"`
	EntityID   uint           `gorm:"not null;index" json:"entity_id"`
	Action     ActivityAction `gorm:"type:varchar(15);not null" json:"action"`
	StaffID    *uint          `gorm:"index" json:"staff_id,omitempty"`
	Details    string         `json:"details,omitempty"`
	IP         string         `gorm:"size:45" json:"ip,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`

	Staff *Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}
