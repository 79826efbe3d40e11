package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
)

// InterfaceJWTService defines the token service interface
type InterfaceJWTService interface {
	GenerateToken(principalID, role, name string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService issues and validates the session tokens
type JWTService struct {
	secretKey string
	issuer    string
}

// JWTClaims carries the authenticated principal inside the token
type JWTClaims struct {
	PrincipalID string `json:"principal_id"` // flat number, employee id or admin id
	Role        string `json:"role"`
	Name        string `json:"name"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new token service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "residential-security-system",
	}
}

// GenerateToken issues a token valid for 24 hours
func (s *JWTService) GenerateToken(principalID, role, name string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		PrincipalID: principalID,
		Role:        role,
		Name:        name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken verifies signature and expiry
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims pulls the principal claims out of a token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}
	if principalID, ok := claims["principal_id"].(string); ok {
		jwtClaims.PrincipalID = principalID
	}
	if role, ok := claims["role"].(string); ok {
		jwtClaims.Role = role
	}
	if name, ok := claims["name"].(string); ok {
		jwtClaims.Name = name
	}
	if issuer, ok := claims["iss"].(string); ok {
		jwtClaims.Issuer = issuer
	}

	return jwtClaims, nil
}
