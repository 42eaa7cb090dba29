package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"savora-be/internal/identity"
	"savora-be/internal/user"
)

// Auth resolves the Bearer token and stores the caller identity in the
// request context. Requests without a valid token are rejected.
func Auth(auth user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx := identity.WithIdentity(c.Request.Context(), identity.Identity{
			UserID: claims.UserID,
			Email:  claims.Subject,
			Role:   claims.Role,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set. Must run
// after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identity.FromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		for _, role := range roles {
			if strings.EqualFold(id.Role, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
