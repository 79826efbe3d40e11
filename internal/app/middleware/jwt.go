package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken strips the "Bearer " prefix from the authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// validateRequest parses the token from the request and returns its claims,
// writing the 401 response itself when validation fails
func validateRequest(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid or expired token",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token claims",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	return claims, true
}

// storeClaims copies the principal claims into the gin context
func storeClaims(c *gin.Context, claims jwt.MapClaims) {
	c.Set("principalID", claims["principal_id"])
	c.Set("role", claims["role"])
	c.Set("claims", claims)
}

// AuthenticateAdmin requires the society admin role
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateRequest(c)
		if !ok {
			return
		}

		if role, exists := claims["role"].(string); !exists || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		storeClaims(c, claims)
		c.Next()
	}
}

// AuthenticateGuard requires the security guard role. Admins may also call
// guard endpoints when reviewing gate activity.
func AuthenticateGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateRequest(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || (role != models.RoleSecurity && role != models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires security guard role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		storeClaims(c, claims)
		c.Next()
	}
}

// AuthenticateResident requires the resident role. The flat number travels
// in the principal_id claim; controllers use it to scope request lists.
func AuthenticateResident() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateRequest(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || (role != models.RoleUser && role != models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires resident role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		if flat, ok := claims["principal_id"].(string); ok {
			c.Set("flatNumber", flat)
		}
		storeClaims(c, claims)
		c.Next()
	}
}

// Authentication accepts any authenticated principal
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateRequest(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || !models.IsValidRole(role) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires valid role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		storeClaims(c, claims)
		c.Next()
	}
}
