package models

import (
	"time"
)

// Visitor request lifecycle states. A request starts pending and moves
// exactly once to one of the three terminal states.
const (
	VisitorPending    = "pending"
	VisitorApproved   = "approved"
	VisitorRejected   = "rejected"
	VisitorLeftAtGate = "left-at-gate"
)

// VisitorRequest is a gate entry request raised by a guard against a flat.
type VisitorRequest struct {
	ID             string `gorm:"type:varchar(36);primaryKey" json:"id"`
	VisitorName    string `gorm:"type:varchar(50);not null" json:"visitor_name"`
	PhoneNumber    string `gorm:"type:varchar(20);not null" json:"phone_number"`
	PurposeOfVisit string `gorm:"type:varchar(100);not null" json:"purpose_of_visit"`
	FlatNumber     string `gorm:"type:varchar(20);not null;index" json:"flat_number"`
	// Snapshot of the resident's name at submission time
	ResidentName string `gorm:"type:varchar(50)" json:"resident_name,omitempty"`
	// Captured documents are retained by filename only
	VisitorPhoto string     `gorm:"type:varchar(255)" json:"visitor_photo,omitempty"`
	IDProof      string     `gorm:"type:varchar(255)" json:"id_proof,omitempty"`
	Status       string     `gorm:"type:varchar(15);not null;default:pending" json:"status"`
	CheckedBy    string     `gorm:"type:varchar(80)" json:"checked_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// IsValidVisitorStatus reports whether s is a known lifecycle state
func IsValidVisitorStatus(s string) bool {
	return s == VisitorPending || IsTerminalVisitorStatus(s)
}

// IsTerminalVisitorStatus reports whether s admits no further transition
func IsTerminalVisitorStatus(s string) bool {
	return s == VisitorApproved || s == VisitorRejected || s == VisitorLeftAtGate
}

// CanTransitionVisitorStatus reports whether a request may move from one
// state to another. The only legal moves are pending to a terminal state;
// terminal states are mutually exclusive and final.
func CanTransitionVisitorStatus(from, to string) bool {
	return from == VisitorPending && IsTerminalVisitorStatus(to)
}
