package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
)

// AlertLog is the process-memory incident feed, newest first. Unlike the
// directory entities it has no relational backend; alerts exist only for the
// lifetime of the process regardless of which store serves the directory.
type AlertLog struct {
	mu     sync.RWMutex
	alerts []models.Alert
}

// NewAlertLog creates an empty alert log
func NewAlertLog() *AlertLog {
	return &AlertLog{}
}

// Seed loads the demo incidents: two active alerts and one resolved
func (l *AlertLog) Seed() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	age := func(minutes int) time.Time { return now.Add(-time.Duration(minutes) * time.Minute) }

	l.alerts = []models.Alert{
		{ID: uuid.NewString(), Type: models.AlertIntrusion, Message: "Motion detected at main entrance", Source: "Camera 01", Status: models.AlertActive, Priority: models.AlertPriorityHigh, Timestamp: age(5)},
		{ID: uuid.NewString(), Type: models.AlertFire, Message: "Smoke detected in parking area", Source: "Sensor 03", Status: models.AlertResolved, Priority: models.AlertPriorityHigh, Timestamp: age(10)},
		{ID: uuid.NewString(), Type: models.AlertMaintenance, Message: "Elevator maintenance required", Source: "System", Status: models.AlertActive, Priority: models.AlertPriorityMedium, Timestamp: age(30)},
	}
}

// GetAll lists alerts, newest first
func (l *AlertLog) GetAll() []models.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Alert, len(l.alerts))
	copy(out, l.alerts)
	return out
}

// Add prepends an alert so the newest entry sits at index 0, filling in the
// generated id, the timestamp and the default active status
func (l *AlertLog) Add(alert *models.Alert) *models.Alert {
	l.mu.Lock()
	defer l.mu.Unlock()

	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now()
	}
	if alert.Status == "" {
		alert.Status = models.AlertActive
	}
	l.alerts = append([]models.Alert{*alert}, l.alerts...)
	return alert
}
