package models

import "time"

// Alert categories raised by sensors, cameras and manual reports
const (
	AlertIntrusion   = "intrusion"
	AlertFire        = "fire"
	AlertMedical     = "medical"
	AlertMaintenance = "maintenance"
	AlertSOS         = "sos"
)

// Alert lifecycle states
const (
	AlertActive   = "active"
	AlertResolved = "resolved"
)

// Alert priorities
const (
	AlertPriorityLow    = "low"
	AlertPriorityMedium = "medium"
	AlertPriorityHigh   = "high"
)

// IsValidAlertType checks an alert type against the known categories
func IsValidAlertType(alertType string) bool {
	switch alertType {
	case AlertIntrusion, AlertFire, AlertMedical, AlertMaintenance, AlertSOS:
		return true
	}
	return false
}

// IsValidAlertPriority checks an alert priority value
func IsValidAlertPriority(priority string) bool {
	return priority == AlertPriorityLow || priority == AlertPriorityMedium || priority == AlertPriorityHigh
}

// Alert is a society-wide incident entry. Alerts live only in the in-process
// alert log and are never written to the relational backend, so the feed
// resets on restart.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
}
