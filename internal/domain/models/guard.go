package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guard shifts
const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)

// Guard duty status
const (
	GuardOnDuty  = "on-duty"
	GuardOffDuty = "off-duty"
)

// Guard represents a security guard. Employee id is the unique business key.
type Guard struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	EmployeeID  string `gorm:"type:varchar(20);unique;not null" json:"employee_id"`
	Name        string `gorm:"type:varchar(50);not null" json:"name"`
	Shift       string `gorm:"type:varchar(10);not null" json:"shift"`
	PhoneNumber string `gorm:"type:varchar(20);not null" json:"phone_number"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"`
	Status      string `gorm:"type:varchar(10);not null;default:off-duty" json:"status"`
	// Free-form display string, present only while on duty
	CheckInTime string    `gorm:"type:varchar(30)" json:"check_in_time,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate is a GORM hook that assigns a generated id
func (g *Guard) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// IsValidShift reports whether s is a known shift name
func IsValidShift(s string) bool {
	return s == ShiftMorning || s == ShiftEvening || s == ShiftNight
}

// IsValidGuardStatus reports whether s is a known duty status
func IsValidGuardStatus(s string) bool {
	return s == GuardOnDuty || s == GuardOffDuty
}
