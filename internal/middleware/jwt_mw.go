package middleware

import (
	"errors"
	"net/http"
	"strings"

	"english_coaching/internal/model"
	"english_coaching/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthUserKey is the context key under which the authenticated principal
// is stored.
const AuthUserKey = "authUser"

// JWTAuthMiddleware verifies the bearer token, loads the current user
// record and attaches it to the request context as the principal.
func JWTAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		user, err := authService.VerifyAndGetUser(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, service.ErrAccountSuspended) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": service.ErrAccountSuspended.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the principal set by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (*model.User, error) {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}
