package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
)

// GormStore issues the directory operations as queries against a relational
// database through gorm. Not-found rows are folded into nil results so the
// service sees the same contract as the memory store.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore wraps an open gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// AutoMigrate creates or updates the directory tables
func (s *GormStore) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.Resident{},
		&models.FamilyMember{},
		&models.TemporaryGuest{},
		&models.Guard{},
		&models.Admin{},
		&models.VisitorRequest{},
		&models.User{},
	)
}

// GetResident loads a resident with family members and temporary guests
func (s *GormStore) GetResident(flatNumber string) (*models.Resident, error) {
	var resident models.Resident
	err := s.DB.Preload("FamilyMembers").Preload("TemporaryGuests").
		First(&resident, "flat_number = ?", flatNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

// GetAllResidents lists residents ordered by flat number
func (s *GormStore) GetAllResidents() ([]models.Resident, error) {
	var residents []models.Resident
	err := s.DB.Preload("FamilyMembers").Preload("TemporaryGuests").
		Order("flat_number").Find(&residents).Error
	if err != nil {
		return nil, err
	}
	return residents, nil
}

// AddResident inserts unless the flat number is already taken
func (s *GormStore) AddResident(resident *models.Resident) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Resident{}).Where("flat_number = ?", resident.FlatNumber).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := s.DB.Create(resident).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UpdateResident patches name, phone number and password. The flat number is
// the immutable key; empty fields are left unchanged.
func (s *GormStore) UpdateResident(flatNumber, name, phoneNumber, password string) (*models.Resident, error) {
	resident, err := s.GetResident(flatNumber)
	if err != nil || resident == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if phoneNumber != "" {
		updates["phone_number"] = phoneNumber
	}
	if password != "" {
		updates["password"] = password
	}
	if len(updates) > 0 {
		if err := s.DB.Model(resident).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetResident(flatNumber)
}

// GetGuard looks a guard up by employee id
func (s *GormStore) GetGuard(employeeID string) (*models.Guard, error) {
	var guard models.Guard
	err := s.DB.First(&guard, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guard, nil
}

// GetAllGuards lists guards ordered by employee id
func (s *GormStore) GetAllGuards() ([]models.Guard, error) {
	var guards []models.Guard
	if err := s.DB.Order("employee_id").Find(&guards).Error; err != nil {
		return nil, err
	}
	return guards, nil
}

// AddGuard inserts unless the employee id is already taken
func (s *GormStore) AddGuard(guard *models.Guard) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Guard{}).Where("employee_id = ?", guard.EmployeeID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := s.DB.Create(guard).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UpdateGuardStatus mutates duty status and the check-in display string
func (s *GormStore) UpdateGuardStatus(employeeID, status, checkInTime string) (*models.Guard, error) {
	guard, err := s.GetGuard(employeeID)
	if err != nil || guard == nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.GuardOffDuty {
		updates["check_in_time"] = ""
	} else if checkInTime != "" {
		updates["check_in_time"] = checkInTime
	}
	if err := s.DB.Model(guard).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetGuard(employeeID)
}

// GetAdmin looks an admin up by admin id
func (s *GormStore) GetAdmin(adminID string) (*models.Admin, error) {
	var admin models.Admin
	err := s.DB.First(&admin, "admin_id = ?", adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// AddVisitorRequest inserts a fully populated request row
func (s *GormStore) AddVisitorRequest(request *models.VisitorRequest) error {
	return s.DB.Create(request).Error
}

// GetAllVisitorRequests lists newest first
func (s *GormStore) GetAllVisitorRequests() ([]models.VisitorRequest, error) {
	var requests []models.VisitorRequest
	if err := s.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetVisitorRequestsForFlat filters by flat, newest first
func (s *GormStore) GetVisitorRequestsForFlat(flatNumber string) ([]models.VisitorRequest, error) {
	var requests []models.VisitorRequest
	err := s.DB.Where("flat_number = ?", flatNumber).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateVisitorRequestStatus applies the one-way transition out of pending.
// The guarded WHERE keeps two concurrent approvals from both winning.
func (s *GormStore) UpdateVisitorRequestStatus(id, status string, updatedAt time.Time) (*models.VisitorRequest, UpdateResult, error) {
	var request models.VisitorRequest
	err := s.DB.First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, UpdateNotFound, nil
	}
	if err != nil {
		return nil, UpdateNotFound, err
	}

	result := s.DB.Model(&models.VisitorRequest{}).
		Where("id = ? AND status = ?", id, models.VisitorPending).
		Updates(map[string]interface{}{"status": status, "updated_at": updatedAt})
	if result.Error != nil {
		return nil, UpdateNotFound, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, UpdateFinalized, nil
	}

	request.Status = status
	request.UpdatedAt = &updatedAt
	return &request, UpdateOK, nil
}

// GetUserByIdentifier matches username, employee id or admin id
func (s *GormStore) GetUserByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", identifier).
		Or("employee_id <> '' AND employee_id = ?", identifier).
		Or("admin_id <> '' AND admin_id = ?", identifier).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsers lists registrations in insertion order
func (s *GormStore) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddUser inserts unless any of the candidate's login keys is already taken.
// Checking every key keeps a reused username out even when the role-specific
// identifier differs.
func (s *GormStore) AddUser(user *models.User) (bool, error) {
	for _, key := range user.LoginKeys() {
		existing, err := s.GetUserByIdentifier(key)
		if err != nil {
			return false, err
		}
		if existing != nil {
			return false, nil
		}
	}
	if err := s.DB.Create(user).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UpdateUserStatus moves a registration between pending/active/blocked
func (s *GormStore) UpdateUserStatus(id, status string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&user).Update("status", status).Error; err != nil {
		return nil, err
	}
	user.Status = status
	return &user, nil
}
