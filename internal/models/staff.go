package models

import "time"

type StaffRole string

const (
	RoleManager      StaffRole = "MANAGER"
	RoleReceptionist StaffRole = "RECEPTIONIST"
	RoleCleaner      StaffRole = "CLEANER"
)

type Staff struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Role         StaffRole `gorm:"type:varchar(15);not null" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
