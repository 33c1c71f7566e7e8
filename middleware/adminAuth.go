package middleware

import (
	"net/http"

	"haki/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles aborts unless the authenticated user's role is one of the
// allowed roles. It must run after JWTAuthUserMiddleware, which sets "role".
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// AdminAuthMiddleware admits admins and superadmins.
func AdminAuthMiddleware() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin, models.RoleSuperAdmin)
}

// SuperAdminAuthMiddleware admits superadmins only. Destructive operations
// (user deletion, audit export) sit behind this.
func SuperAdminAuthMiddleware() gin.HandlerFunc {
	return RequireRoles(models.RoleSuperAdmin)
}
