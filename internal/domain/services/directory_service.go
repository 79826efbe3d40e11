package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/events"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/store"
	"github.com/ritikkamerkar15/residential-security-system/pkg/logger"
)

// InterfaceDirectoryService is the single source of truth for residents,
// guards, admins and visitor requests. Mutating operations signal expected
// negative outcomes (duplicate key, unknown key) with false or nil; backend
// transport failures are logged and folded into the same results so no
// exception crosses this boundary.
type InterfaceDirectoryService interface {
	GetResident(flatNumber string) *models.Resident
	GetAllResidents() []models.Resident
	AddResident(resident *models.Resident) bool
	UpdateResident(flatNumber, name, phoneNumber, password string) bool

	GetGuard(employeeID string) *models.Guard
	GetAllGuards() []models.Guard
	AddGuard(guard *models.Guard) bool
	UpdateGuardStatus(employeeID, status, checkInTime string) bool

	GetAdmin(adminID string) *models.Admin

	AddVisitorRequest(request *models.VisitorRequest) *models.VisitorRequest
	GetAllVisitorRequests() []models.VisitorRequest
	GetVisitorRequestsForFlat(flatNumber string) []models.VisitorRequest
	UpdateVisitorRequestStatus(id, status string) bool

	GetUserByIdentifier(identifier string) *models.User
	GetAllUsers() []models.User
	AddUser(user *models.User) bool
	UpdateUserStatus(id, status string) bool

	GetAllAlerts() []models.Alert
	AddAlert(alert *models.Alert) *models.Alert

	GetStatistics() models.Statistics
	ExportToCSV(dataType string) string

	Events() *events.Bus
}

// DirectoryService fronts two interchangeable backends: the in-memory store
// and the relational store. The backend is picked per call, so the same
// service instance keeps serving from memory when no database is reachable.
type DirectoryService struct {
	Config     *config.Config
	bus        *events.Bus
	memory     *store.MemoryStore
	relational *store.GormStore
	alerts     *store.AlertLog
}

// NewDirectoryService creates the directory service. db may be nil, in which
// case every operation runs against the seeded memory store.
func NewDirectoryService(db *gorm.DB, cfg *config.Config, bus *events.Bus) InterfaceDirectoryService {
	svc := &DirectoryService{
		Config: cfg,
		bus:    bus,
		memory: store.NewMemoryStore(),
		alerts: store.NewAlertLog(),
	}
	// The alert feed is process-memory in both modes
	svc.alerts.Seed()
	if db != nil {
		svc.relational = store.NewGormStore(db)
	} else {
		logger.Info("directory service running in demo mode on the in-memory store")
		svc.memory.Seed()
	}
	return svc
}

// backend selects the store for the current call
func (s *DirectoryService) backend() store.DirectoryStore {
	if s.relational != nil && s.Config.IsDatabaseConfigured() {
		return s.relational
	}
	return s.memory
}

// Events exposes the bus dashboards subscribe to
func (s *DirectoryService) Events() *events.Bus {
	return s.bus
}

// GetResident returns the resident for a flat, or nil when unknown
func (s *DirectoryService) GetResident(flatNumber string) *models.Resident {
	resident, err := s.backend().GetResident(flatNumber)
	if err != nil {
		logger.Error("failed to fetch resident %s: %v", flatNumber, err)
		return nil
	}
	return resident
}

// GetAllResidents lists residents in stable flat-number order
func (s *DirectoryService) GetAllResidents() []models.Resident {
	residents, err := s.backend().GetAllResidents()
	if err != nil {
		logger.Error("failed to fetch residents: %v", err)
		return []models.Resident{}
	}
	return residents
}

// AddResident inserts a resident and returns false when the flat exists
func (s *DirectoryService) AddResident(resident *models.Resident) bool {
	if resident.CreatedAt.IsZero() {
		resident.CreatedAt = time.Now()
	}
	ok, err := s.backend().AddResident(resident)
	if err != nil {
		logger.Error("failed to add resident %s: %v", resident.FlatNumber, err)
		return false
	}
	if !ok {
		return false
	}
	s.bus.Publish(events.DataUpdated, nil)
	return true
}

// UpdateResident patches a resident's contact details. The flat number is the
// immutable key; empty fields keep their current value. Returns false when no
// resident owns the flat.
func (s *DirectoryService) UpdateResident(flatNumber, name, phoneNumber, password string) bool {
	resident, err := s.backend().UpdateResident(flatNumber, name, phoneNumber, password)
	if err != nil {
		logger.Error("failed to update resident %s: %v", flatNumber, err)
		return false
	}
	if resident == nil {
		return false
	}
	s.bus.Publish(events.DataUpdated, nil)
	return true
}

// GetGuard returns the guard for an employee id, or nil when unknown
func (s *DirectoryService) GetGuard(employeeID string) *models.Guard {
	guard, err := s.backend().GetGuard(employeeID)
	if err != nil {
		logger.Error("failed to fetch guard %s: %v", employeeID, err)
		return nil
	}
	return guard
}

// GetAllGuards lists guards in stable employee-id order
func (s *DirectoryService) GetAllGuards() []models.Guard {
	guards, err := s.backend().GetAllGuards()
	if err != nil {
		logger.Error("failed to fetch guards: %v", err)
		return []models.Guard{}
	}
	return guards
}

// AddGuard inserts a guard and returns false when the employee id exists
func (s *DirectoryService) AddGuard(guard *models.Guard) bool {
	if guard.CreatedAt.IsZero() {
		guard.CreatedAt = time.Now()
	}
	ok, err := s.backend().AddGuard(guard)
	if err != nil {
		logger.Error("failed to add guard %s: %v", guard.EmployeeID, err)
		return false
	}
	if !ok {
		return false
	}
	s.bus.Publish(events.DataUpdated, nil)
	return true
}

// UpdateGuardStatus flips duty status. Going off-duty clears the check-in
// time; going on-duty records the supplied one.
func (s *DirectoryService) UpdateGuardStatus(employeeID, status, checkInTime string) bool {
	guard, err := s.backend().UpdateGuardStatus(employeeID, status, checkInTime)
	if err != nil {
		logger.Error("failed to update guard %s status: %v", employeeID, err)
		return false
	}
	if guard == nil {
		return false
	}
	s.bus.Publish(events.GuardStatusUpdated, guard)
	s.bus.Publish(events.DataUpdated, nil)
	return true
}

// GetAdmin returns the admin for an admin id, or nil when unknown
func (s *DirectoryService) GetAdmin(adminID string) *models.Admin {
	admin, err := s.backend().GetAdmin(adminID)
	if err != nil {
		logger.Error("failed to fetch admin %s: %v", adminID, err)
		return nil
	}
	return admin
}

// AddVisitorRequest validates the target flat, stamps the generated id and
// creation time, defaults the resident name snapshot and inserts newest
// first. Returns nil when the flat is unknown or the backend fails.
func (s *DirectoryService) AddVisitorRequest(request *models.VisitorRequest) *models.VisitorRequest {
	backend := s.backend()

	resident, err := backend.GetResident(request.FlatNumber)
	if err != nil {
		logger.Error("failed to validate flat %s for visitor request: %v", request.FlatNumber, err)
		return nil
	}
	if resident == nil {
		logger.Warning("visitor request rejected: flat %s does not exist", request.FlatNumber)
		return nil
	}

	request.ID = uuid.NewString()
	request.CreatedAt = time.Now()
	request.Status = models.VisitorPending
	if request.ResidentName == "" {
		request.ResidentName = resident.Name
	}

	if err := backend.AddVisitorRequest(request); err != nil {
		logger.Error("failed to add visitor request for flat %s: %v", request.FlatNumber, err)
		return nil
	}

	s.bus.Publish(events.VisitorRequestAdded, request)
	s.bus.Publish(events.DataUpdated, nil)
	return request
}

// GetAllVisitorRequests lists every request, newest first
func (s *DirectoryService) GetAllVisitorRequests() []models.VisitorRequest {
	requests, err := s.backend().GetAllVisitorRequests()
	if err != nil {
		logger.Error("failed to fetch visitor requests: %v", err)
		return []models.VisitorRequest{}
	}
	return requests
}

// GetVisitorRequestsForFlat lists one flat's requests, newest first
func (s *DirectoryService) GetVisitorRequestsForFlat(flatNumber string) []models.VisitorRequest {
	requests, err := s.backend().GetVisitorRequestsForFlat(flatNumber)
	if err != nil {
		logger.Error("failed to fetch visitor requests for flat %s: %v", flatNumber, err)
		return []models.VisitorRequest{}
	}
	if requests == nil {
		// A flat with no requests still serializes as an empty list
		return []models.VisitorRequest{}
	}
	return requests
}

// UpdateVisitorRequestStatus moves a pending request to a terminal state.
// Returns false for an unknown id, an invalid status value or a request that
// was already finalized.
func (s *DirectoryService) UpdateVisitorRequestStatus(id, status string) bool {
	if !models.IsTerminalVisitorStatus(status) {
		logger.Warning("rejected visitor request update %s: %q is not a terminal status", id, status)
		return false
	}

	request, result, err := s.backend().UpdateVisitorRequestStatus(id, status, time.Now())
	if err != nil {
		logger.Error("failed to update visitor request %s: %v", id, err)
		return false
	}
	switch result {
	case store.UpdateNotFound:
		return false
	case store.UpdateFinalized:
		logger.Warning("rejected visitor request update %s: already finalized", id)
		return false
	}

	s.bus.Publish(events.VisitorRequestUpdated, request)
	s.bus.Publish(events.DataUpdated, nil)
	return true
}

// GetUserByIdentifier returns the registered account matching a username,
// employee id or admin id, or nil when unknown
func (s *DirectoryService) GetUserByIdentifier(identifier string) *models.User {
	user, err := s.backend().GetUserByIdentifier(identifier)
	if err != nil {
		logger.Error("failed to fetch user %s: %v", identifier, err)
		return nil
	}
	return user
}

// GetAllUsers lists registered accounts for the admin console
func (s *DirectoryService) GetAllUsers() []models.User {
	users, err := s.backend().GetAllUsers()
	if err != nil {
		logger.Error("failed to fetch users: %v", err)
		return []models.User{}
	}
	return users
}

// AddUser appends a registration and returns false when the identifier is
// already taken
func (s *DirectoryService) AddUser(user *models.User) bool {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	ok, err := s.backend().AddUser(user)
	if err != nil {
		logger.Error("failed to add user %s: %v", user.Username, err)
		return false
	}
	if !ok {
		return false
	}
	s.bus.Publish(events.DataUpdated, nil)
	return true
}

// UpdateUserStatus moves a registration between pending, active and blocked
func (s *DirectoryService) UpdateUserStatus(id, status string) bool {
	user, err := s.backend().UpdateUserStatus(id, status)
	if err != nil {
		logger.Error("failed to update user %s status: %v", id, err)
		return false
	}
	if user == nil {
		return false
	}
	s.bus.Publish(events.DataUpdated, nil)
	return true
}

// GetAllAlerts lists society incidents, newest first
func (s *DirectoryService) GetAllAlerts() []models.Alert {
	return s.alerts.GetAll()
}

// AddAlert records a new incident at the head of the feed
func (s *DirectoryService) AddAlert(alert *models.Alert) *models.Alert {
	added := s.alerts.Add(alert)
	s.bus.Publish(events.DataUpdated, nil)
	return added
}

// GetStatistics computes the dashboard aggregates fresh from current state
func (s *DirectoryService) GetStatistics() models.Statistics {
	requests := s.GetAllVisitorRequests()
	guards := s.GetAllGuards()
	residents := s.GetAllResidents()

	stats := models.Statistics{
		TotalRequests:   len(requests),
		TotalGuards:     len(guards),
		ActiveResidents: len(residents),
		Uptime:          models.UptimeDisplay,
	}

	today := time.Now().Format("2006-01-02")
	for i := range requests {
		switch requests[i].Status {
		case models.VisitorPending:
			stats.PendingRequests++
		case models.VisitorApproved:
			stats.ApprovedRequests++
		case models.VisitorRejected:
			stats.RejectedRequests++
		case models.VisitorLeftAtGate:
			stats.LeftAtGateRequests++
		}
		// Local calendar day, not UTC
		if requests[i].CreatedAt.Format("2006-01-02") == today {
			stats.TodayRequests++
		}
	}

	for i := range guards {
		if guards[i].Status == models.GuardOnDuty {
			stats.ActiveGuards++
		}
	}

	return stats
}
