package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/pkg/logger"
)

// Principal is an authenticated actor: a resident, guard, admin or
// self-registered user.
type Principal struct {
	ID   string `json:"id"`   // flat number, employee id, admin id or user id
	Role string `json:"role"` // user, security or admin
	Name string `json:"name"`
	Flat string `json:"flat,omitempty"`
}

// Session is the materialized login: a bearer token plus the principal it
// carries. The principal is also serialized into a redis slot keyed by role
// so a reconnecting console can restore it.
type Session struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
}

// InterfaceAuthService defines the authentication adapter interface.
// Rejections come back as nil, matching the directory's failure policy.
type InterfaceAuthService interface {
	Login(identifier, password string) *Session
	Register(candidate *models.User) *models.User
	CurrentUser(role, principalID string) *Principal
	Logout(role, principalID string)
}

// AuthService maps credentials onto directory entities
type AuthService struct {
	directory InterfaceDirectoryService
	jwt       InterfaceJWTService
	sessions  InterfaceRedisService
}

// NewAuthService creates a new authentication adapter
func NewAuthService(directory InterfaceDirectoryService, jwtService InterfaceJWTService, sessions InterfaceRedisService) InterfaceAuthService {
	return &AuthService{
		directory: directory,
		jwt:       jwtService,
		sessions:  sessions,
	}
}

// Login matches the identifier against whichever unique key applies - admin
// id, employee id, flat number or registered username - and verifies the
// secret. Returns nil on any mismatch; the caller cannot tell which part was
// wrong.
func (s *AuthService) Login(identifier, password string) *Session {
	if admin := s.directory.GetAdmin(identifier); admin != nil {
		if checkPassword(password, admin.Password) {
			return s.materialize(Principal{ID: admin.AdminID, Role: models.RoleAdmin, Name: admin.Name})
		}
		return nil
	}

	if guard := s.directory.GetGuard(identifier); guard != nil {
		if checkPassword(password, guard.Password) {
			return s.materialize(Principal{ID: guard.EmployeeID, Role: models.RoleSecurity, Name: guard.Name})
		}
		return nil
	}

	if resident := s.directory.GetResident(identifier); resident != nil {
		if checkPassword(password, resident.Password) {
			return s.materialize(Principal{ID: resident.FlatNumber, Role: models.RoleUser, Name: resident.Name, Flat: resident.FlatNumber})
		}
		return nil
	}

	if user := s.directory.GetUserByIdentifier(identifier); user != nil {
		if user.Status == models.UserBlocked {
			logger.Warning("login rejected for blocked account %s", identifier)
			return nil
		}
		if checkPassword(password, user.Password) {
			return s.materialize(Principal{ID: user.ID, Role: user.Role, Name: user.Name, Flat: user.Flat})
		}
	}

	return nil
}

// Register creates a pending-approval account. Returns nil when the chosen
// identifier collides with an existing one.
func (s *AuthService) Register(candidate *models.User) *models.User {
	candidate.Status = models.UserPending
	if s.directory.AddUser(candidate) {
		return candidate
	}
	return nil
}

// CurrentUser restores the principal from its session slot, or nil when no
// session is stored
func (s *AuthService) CurrentUser(role, principalID string) *Principal {
	var principal Principal
	if err := s.sessions.LoadSession(role, principalID, &principal); err != nil {
		return nil
	}
	return &principal
}

// Logout clears the session slot
func (s *AuthService) Logout(role, principalID string) {
	if err := s.sessions.ClearSession(role, principalID); err != nil {
		logger.Warning("failed to clear session for %s/%s: %v", role, principalID, err)
	}
}

// materialize issues the token and persists the session slot
func (s *AuthService) materialize(principal Principal) *Session {
	token, err := s.jwt.GenerateToken(principal.ID, principal.Role, principal.Name)
	if err != nil {
		logger.Error("failed to generate token for %s: %v", principal.ID, err)
		return nil
	}

	// Session persistence is best effort; a dead redis loses restore, not login
	if err := s.sessions.SaveSession(principal.Role, principal.ID, principal); err != nil {
		logger.Warning("failed to persist session for %s/%s: %v", principal.Role, principal.ID, err)
	}

	return &Session{Token: token, Principal: principal}
}

// checkPassword accepts a bcrypt hash or, for demo seed data, the verbatim
// stored secret
func checkPassword(password, stored string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return password == stored
}
