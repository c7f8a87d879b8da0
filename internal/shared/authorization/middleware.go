package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/shared/constants"
)

// RequireAdmin rejects any request whose authenticated role is not admin.
// It must run after the auth middleware has populated the context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
