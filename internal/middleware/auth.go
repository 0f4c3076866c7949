package middleware

import (
	"strings"

	"ncd-clinic-server/internal/config"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/policy"
	"ncd-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// Set caller identity in context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("userZone", claims.Zone)

		c.Next()
	}
}

// GetCallerFromContext assembles the caller identity stamped by
// AuthMiddleware. The bool is false when the middleware did not run.
func GetCallerFromContext(c *gin.Context) (policy.Caller, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return policy.Caller{}, false
	}
	id, ok := userID.(string)
	if !ok {
		return policy.Caller{}, false
	}

	userRole, _ := c.Get("userRole")
	role, ok := userRole.(models.Role)
	if !ok {
		return policy.Caller{}, false
	}

	zone := ""
	if userZone, exists := c.Get("userZone"); exists {
		zone, _ = userZone.(string)
	}

	return policy.Caller{ID: id, Role: role, Zone: zone}, true
}
