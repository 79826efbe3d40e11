package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles for self-registered principals
const (
	RoleUser     = "user"
	RoleSecurity = "security"
	RoleAdmin    = "admin"
)

// IsValidRole checks a role string against the known roles
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleSecurity || role == RoleAdmin
}

// Account approval states. A fresh registration starts pending until an
// administrator activates it. This is separate from the visitor request
// lifecycle.
const (
	UserActive  = "active"
	UserPending = "pending"
	UserBlocked = "blocked"
)

// User is a self-registered principal awaiting (or past) admin approval.
type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);unique;not null" json:"username"`
	Name     string `gorm:"type:varchar(50);not null" json:"name"`
	Role     string `gorm:"type:varchar(10);not null" json:"role"`
	Flat     string `gorm:"type:varchar(20)" json:"flat,omitempty"`
	Phone    string `gorm:"type:varchar(20);not null" json:"phone"`
	// Role-specific identifiers
	EmployeeID string `gorm:"type:varchar(20)" json:"employee_id,omitempty"`
	AdminID    string `gorm:"type:varchar(20)" json:"admin_id,omitempty"`
	Password   string `gorm:"type:varchar(100)" json:"-"`
	Status     string `gorm:"type:varchar(10);not null;default:pending" json:"status"`

	// Submitted documents, filenames only
	PropertyPaper  string `gorm:"type:varchar(255)" json:"property_paper,omitempty"`
	ProfilePhoto   string `gorm:"type:varchar(255)" json:"profile_photo,omitempty"`
	IdentityProof  string `gorm:"type:varchar(255)" json:"identity_proof,omitempty"`
	JobOfferLetter string `gorm:"type:varchar(255)" json:"job_offer_letter,omitempty"`
	SecurityIDCard string `gorm:"type:varchar(255)" json:"security_id_card,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate is a GORM hook that assigns a generated id
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// LoginKeys returns every identifier this account can be looked up by at
// login time: the username plus any role-specific id. All of them must be
// unique across accounts.
func (u *User) LoginKeys() []string {
	keys := []string{u.Username}
	if u.EmployeeID != "" {
		keys = append(keys, u.EmployeeID)
	}
	if u.AdminID != "" {
		keys = append(keys, u.AdminID)
	}
	return keys
}

// Identifier returns the unique key a user logs in with, which depends on
// the role the account was registered for.
func (u *User) Identifier() string {
	switch {
	case u.Role == RoleSecurity && u.EmployeeID != "":
		return u.EmployeeID
	case u.Role == RoleAdmin && u.AdminID != "":
		return u.AdminID
	default:
		return u.Username
	}
}
