package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"holdup_backend/internal/models"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format. Use Bearer <token>"})
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Set user information in the context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		if claims.LocationID != nil {
			c.Set("userLocationID", *claims.LocationID)
		}

		c.Next()
	}
}

// RoleAuthMiddleware creates a Gin middleware for role-based authorization.
// It checks if the user role (from JWT claims) is one of the allowed roles.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "User role not found in token claims. Ensure AuthMiddleware runs first."})
			c.Abort()
			return
		}

		roleStr, ok := userRole.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User role in token is not a string"})
			c.Abort()
			return
		}

		allowed := false
		for _, r := range allowedRoles {
			if strings.EqualFold(roleStr, r) {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource. Required roles: " + strings.Join(allowedRoles, ", ")})
			c.Abort()
			return
		}

		c.Next()
	}
}

// WebhookAuthMiddleware authenticates external webhook calls against a
// static bearer secret. No session or role is attached; this is a plain
// shared-secret comparison (no payload signing or replay protection).
func WebhookAuthMiddleware(secret string) gin.HandlerFunc {
	expected := "Bearer " + secret
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if subtle.ConstantTimeCompare([]byte(authHeader), []byte(expected)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized webhook request"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthContextFromGin builds the request-scoped authorization context from
// the values AuthMiddleware stored on the gin context.
func AuthContextFromGin(c *gin.Context) models.AuthContext {
	actor := models.AuthContext{}
	if userID, ok := c.Get("userID"); ok {
		if id, ok := userID.(int64); ok {
			actor.UserID = id
		}
	}
	if role, ok := c.Get("userRole"); ok {
		if r, ok := role.(string); ok {
			actor.Role = r
		}
	}
	if locationID, ok := c.Get("userLocationID"); ok {
		if id, ok := locationID.(int64); ok {
			actor.LocationID = &id
		}
	}
	return actor
}
