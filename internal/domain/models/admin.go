package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin represents a system administrator
type Admin struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	AdminID   string    `gorm:"type:varchar(20);unique;not null" json:"admin_id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that assigns a generated id
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
