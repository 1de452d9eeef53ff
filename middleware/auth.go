package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

const (
	UserContextKey       = "userID"
	IsAdminContextKey    = "isAdmin"
	SuperAdminContextKey = "superAdmin"
)

// AuthMiddleware validates the bearer token and stashes the caller's identity
// in the gin context.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserContextKey, claims.UserID)
		c.Set(IsAdminContextKey, claims.IsAdmin)
		c.Set(SuperAdminContextKey, claims.SuperAdmin)
		c.Next()
	}
}

// AdminMiddleware rejects non-admin callers. Runs after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(IsAdminContextKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", errors.New("user ID not found in context")
}

func IsSuperAdmin(c *gin.Context) bool {
	return c.GetBool(SuperAdminContextKey)
}
