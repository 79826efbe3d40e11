package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
)

// MemoryStore keeps every entity in process memory. It backs demos and tests
// and serves as the fallback whenever no relational backend is configured.
// The store is exclusively owned by the directory service; nothing else may
// touch the slices directly.
type MemoryStore struct {
	mu              sync.RWMutex
	residents       []models.Resident
	guards          []models.Guard
	admins          []models.Admin
	visitorRequests []models.VisitorRequest // newest first
	users           []models.User
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed loads the demo data set: three residents, three guards, one admin and
// a handful of visitor requests in known states.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	age := func(minutes int) time.Time { return now.Add(-time.Duration(minutes) * time.Minute) }

	s.residents = []models.Resident{
		{
			FlatNumber:  "A-101",
			Name:        "John Smith",
			PhoneNumber: "+91 9876543210",
			Password:    "resident123",
			CreatedAt:   now,
			FamilyMembers: []models.FamilyMember{
				{ID: uuid.NewString(), FlatNumber: "A-101", Name: "Jane Smith", PhoneNumber: "+91 9876543220", Relation: "Spouse", Age: intPtr(28)},
			},
		},
		{FlatNumber: "B-203", Name: "Sarah Johnson", PhoneNumber: "+91 9876543211", Password: "resident123", CreatedAt: now},
		{FlatNumber: "C-105", Name: "Mike Wilson", PhoneNumber: "+91 9876543212", Password: "resident123", CreatedAt: now},
	}

	s.guards = []models.Guard{
		{ID: uuid.NewString(), EmployeeID: "SEC001", Name: "Ramesh Kumar", Shift: models.ShiftMorning, PhoneNumber: "+91 9876543230", Password: "guard123", Status: models.GuardOnDuty, CheckInTime: "8:20:07 AM", CreatedAt: now},
		{ID: uuid.NewString(), EmployeeID: "SEC002", Name: "Suresh Patel", Shift: models.ShiftEvening, PhoneNumber: "+91 9876543231", Password: "guard123", Status: models.GuardOffDuty, CreatedAt: now},
		{ID: uuid.NewString(), EmployeeID: "SEC003", Name: "Mahesh Singh", Shift: models.ShiftNight, PhoneNumber: "+91 9876543232", Password: "guard123", Status: models.GuardOffDuty, CreatedAt: now},
	}

	s.admins = []models.Admin{
		{ID: uuid.NewString(), AdminID: "admin001", Name: "System Administrator", Password: "admin123", CreatedAt: now},
	}

	s.visitorRequests = []models.VisitorRequest{
		{ID: uuid.NewString(), VisitorName: "David Wilson", PhoneNumber: "+1-555-0125", PurposeOfVisit: "Package Delivery", FlatNumber: "A-101", ResidentName: "John Smith", Status: models.VisitorPending, CheckedBy: "Ramesh Kumar (SEC001)", CreatedAt: age(2)},
		{ID: uuid.NewString(), VisitorName: "Lisa Chen", PhoneNumber: "+1-555-0126", PurposeOfVisit: "Personal Visit", FlatNumber: "A-101", ResidentName: "John Smith", Status: models.VisitorPending, CheckedBy: "Ramesh Kumar (SEC001)", CreatedAt: age(5)},
		{ID: uuid.NewString(), VisitorName: "Maria Garcia", PhoneNumber: "+1-555-0124", PurposeOfVisit: "Package Delivery", FlatNumber: "C-105", ResidentName: "Mike Wilson", Status: models.VisitorRejected, CheckedBy: "Ramesh Kumar (SEC001)", CreatedAt: age(15)},
		{ID: uuid.NewString(), VisitorName: "Robert Johnson", PhoneNumber: "+1-555-0123", PurposeOfVisit: "Business Meeting", FlatNumber: "B-203", ResidentName: "Sarah Johnson", Status: models.VisitorApproved, CheckedBy: "Ramesh Kumar (SEC001)", CreatedAt: age(60)},
	}
}

func intPtr(v int) *int { return &v }

// GetResident looks a resident up by flat number
func (s *MemoryStore) GetResident(flatNumber string) (*models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.residents {
		if s.residents[i].FlatNumber == flatNumber {
			r := s.residents[i]
			return &r, nil
		}
	}
	return nil, nil
}

// GetAllResidents lists residents ordered by flat number
func (s *MemoryStore) GetAllResidents() ([]models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resident, len(s.residents))
	copy(out, s.residents)
	sort.Slice(out, func(i, j int) bool { return out[i].FlatNumber < out[j].FlatNumber })
	return out, nil
}

// AddResident inserts unless the flat number is already taken
func (s *MemoryStore) AddResident(resident *models.Resident) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.residents {
		if s.residents[i].FlatNumber == resident.FlatNumber {
			return false, nil
		}
	}
	s.residents = append(s.residents, *resident)
	return true, nil
}

// UpdateResident patches name, phone number and password in place. The flat
// number is the immutable key; empty fields are left unchanged.
func (s *MemoryStore) UpdateResident(flatNumber, name, phoneNumber, password string) (*models.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.residents {
		if s.residents[i].FlatNumber == flatNumber {
			if name != "" {
				s.residents[i].Name = name
			}
			if phoneNumber != "" {
				s.residents[i].PhoneNumber = phoneNumber
			}
			if password != "" {
				s.residents[i].Password = password
			}
			s.residents[i].UpdatedAt = time.Now()
			r := s.residents[i]
			return &r, nil
		}
	}
	return nil, nil
}

// GetGuard looks a guard up by employee id
func (s *MemoryStore) GetGuard(employeeID string) (*models.Guard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.guards {
		if s.guards[i].EmployeeID == employeeID {
			g := s.guards[i]
			return &g, nil
		}
	}
	return nil, nil
}

// GetAllGuards lists guards ordered by employee id
func (s *MemoryStore) GetAllGuards() ([]models.Guard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Guard, len(s.guards))
	copy(out, s.guards)
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

// AddGuard inserts unless the employee id is already taken
func (s *MemoryStore) AddGuard(guard *models.Guard) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.guards {
		if s.guards[i].EmployeeID == guard.EmployeeID {
			return false, nil
		}
	}
	if guard.ID == "" {
		guard.ID = uuid.NewString()
	}
	s.guards = append(s.guards, *guard)
	return true, nil
}

// UpdateGuardStatus mutates duty status and the check-in display string
func (s *MemoryStore) UpdateGuardStatus(employeeID, status, checkInTime string) (*models.Guard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.guards {
		if s.guards[i].EmployeeID == employeeID {
			s.guards[i].Status = status
			if status == models.GuardOffDuty {
				// A stale check-in time must not describe a finished shift
				s.guards[i].CheckInTime = ""
			} else if checkInTime != "" {
				s.guards[i].CheckInTime = checkInTime
			}
			s.guards[i].UpdatedAt = time.Now()
			g := s.guards[i]
			return &g, nil
		}
	}
	return nil, nil
}

// GetAdmin looks an admin up by admin id
func (s *MemoryStore) GetAdmin(adminID string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.admins {
		if s.admins[i].AdminID == adminID {
			a := s.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

// AddVisitorRequest prepends so the newest request sits at index 0
func (s *MemoryStore) AddVisitorRequest(request *models.VisitorRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visitorRequests = append([]models.VisitorRequest{*request}, s.visitorRequests...)
	return nil
}

// GetAllVisitorRequests lists newest first
func (s *MemoryStore) GetAllVisitorRequests() ([]models.VisitorRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.VisitorRequest, len(s.visitorRequests))
	copy(out, s.visitorRequests)
	return out, nil
}

// GetVisitorRequestsForFlat filters by flat, preserving newest-first order
func (s *MemoryStore) GetVisitorRequestsForFlat(flatNumber string) ([]models.VisitorRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.VisitorRequest{}
	for i := range s.visitorRequests {
		if s.visitorRequests[i].FlatNumber == flatNumber {
			out = append(out, s.visitorRequests[i])
		}
	}
	return out, nil
}

// UpdateVisitorRequestStatus applies the one-way transition out of pending
func (s *MemoryStore) UpdateVisitorRequestStatus(id, status string, updatedAt time.Time) (*models.VisitorRequest, UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.visitorRequests {
		if s.visitorRequests[i].ID != id {
			continue
		}
		if !models.CanTransitionVisitorStatus(s.visitorRequests[i].Status, status) {
			return nil, UpdateFinalized, nil
		}
		s.visitorRequests[i].Status = status
		s.visitorRequests[i].UpdatedAt = &updatedAt
		r := s.visitorRequests[i]
		return &r, UpdateOK, nil
	}
	return nil, UpdateNotFound, nil
}

// GetUserByIdentifier matches username, employee id or admin id
func (s *MemoryStore) GetUserByIdentifier(identifier string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		u := &s.users[i]
		if u.Username == identifier || (u.EmployeeID != "" && u.EmployeeID == identifier) || (u.AdminID != "" && u.AdminID == identifier) {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// GetAllUsers lists registrations in insertion order
func (s *MemoryStore) GetAllUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// AddUser inserts unless any of the candidate's login keys is already taken.
// The username always counts as a login key, so a reused username is rejected
// even when the role-specific identifier differs.
func (s *MemoryStore) AddUser(user *models.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range user.LoginKeys() {
		for i := range s.users {
			u := &s.users[i]
			if u.Username == key || (u.EmployeeID != "" && u.EmployeeID == key) || (u.AdminID != "" && u.AdminID == key) {
				return false, nil
			}
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.users = append(s.users, *user)
	return true, nil
}

// UpdateUserStatus moves a registration between pending/active/blocked
func (s *MemoryStore) UpdateUserStatus(id, status string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
			s.users[i].UpdatedAt = time.Now()
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
