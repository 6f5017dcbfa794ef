package middleware

import (
	"net/http"

	"english_coaching/internal/authz"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware rejects requests whose principal is not an admin.
// JWTAuthMiddleware must run first.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := CurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if err := authz.RequireAdmin(user); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		c.Next()
	}
}
