package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resident represents a flat owner. The flat number is the primary key and
// is immutable once the record is created.
type Resident struct {
	FlatNumber  string    `gorm:"type:varchar(20);primaryKey" json:"flat_number"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"` // never exposed in JSON
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations - owned by composition, removed with the resident
	FamilyMembers   []FamilyMember   `gorm:"foreignKey:FlatNumber;references:FlatNumber;constraint:OnDelete:CASCADE" json:"family_members"`
	TemporaryGuests []TemporaryGuest `gorm:"foreignKey:FlatNumber;references:FlatNumber;constraint:OnDelete:CASCADE" json:"temporary_guests"`
}

// FamilyMember belongs to exactly one resident
type FamilyMember struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FlatNumber  string    `gorm:"type:varchar(20);not null;index" json:"flat_number"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Relation    string    `gorm:"type:varchar(30);not null" json:"relation"`
	Age         *int      `json:"age,omitempty"`
	// Uploaded documents are retained by filename only
	IdentityProof string    `gorm:"type:varchar(255)" json:"identity_proof,omitempty"`
	ProfilePhoto  string    `gorm:"type:varchar(255)" json:"profile_photo,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TemporaryGuest is a short-stay guest registered by a resident. Check-in and
// check-out are free-form date strings and are not validated for ordering.
type TemporaryGuest struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FlatNumber  string    `gorm:"type:varchar(20);not null;index" json:"flat_number"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	CheckIn     string    `gorm:"type:varchar(30)" json:"check_in"`
	CheckOut    string    `gorm:"type:varchar(30)" json:"check_out"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that assigns a generated id
func (m *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate is a GORM hook that assigns a generated id
func (g *TemporaryGuest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
