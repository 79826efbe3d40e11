package store

import (
	"time"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
)

// UpdateResult reports what happened to a targeted status update.
type UpdateResult int

const (
	// UpdateOK - the record was mutated.
	UpdateOK UpdateResult = iota
	// UpdateNotFound - no record with that key exists.
	UpdateNotFound
	// UpdateFinalized - the visitor request already holds a terminal status.
	UpdateFinalized
)

// DirectoryStore is the storage contract shared by the in-memory and
// relational backends. Lookups signal absence with a nil record and a nil
// error; a non-nil error always means backend transport failure, never an
// ordinary negative outcome.
type DirectoryStore interface {
	GetResident(flatNumber string) (*models.Resident, error)
	GetAllResidents() ([]models.Resident, error)
	// AddResident returns false when the flat number is already taken.
	AddResident(resident *models.Resident) (bool, error)
	// UpdateResident patches the mutable resident fields; empty values keep
	// their current value. Returns the mutated resident, or nil when unknown.
	UpdateResident(flatNumber, name, phoneNumber, password string) (*models.Resident, error)

	GetGuard(employeeID string) (*models.Guard, error)
	GetAllGuards() ([]models.Guard, error)
	// AddGuard returns false when the employee id is already taken.
	AddGuard(guard *models.Guard) (bool, error)
	// UpdateGuardStatus returns the mutated guard, or nil when unknown.
	UpdateGuardStatus(employeeID, status, checkInTime string) (*models.Guard, error)

	GetAdmin(adminID string) (*models.Admin, error)

	AddVisitorRequest(request *models.VisitorRequest) error
	// GetAllVisitorRequests lists newest first.
	GetAllVisitorRequests() ([]models.VisitorRequest, error)
	GetVisitorRequestsForFlat(flatNumber string) ([]models.VisitorRequest, error)
	// UpdateVisitorRequestStatus enforces the one-way transition out of
	// pending and stamps updatedAt on success.
	UpdateVisitorRequestStatus(id, status string, updatedAt time.Time) (*models.VisitorRequest, UpdateResult, error)

	GetUserByIdentifier(identifier string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	AddUser(user *models.User) (bool, error)
	UpdateUserStatus(id, status string) (*models.User, error)
}
