package middleware

import (
	"net/http"
	"strings"

	"taskdeck/internal/domain"
	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// Auth verifies the Authorization header and stores the user id in the
// context. Status contract: missing header is 401, anything wrong with the
// token itself (bad format, bad signature, expired) is 403.
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			AuthFailures.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrTokenMissing.Error()})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			AuthFailures.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": domain.ErrTokenInvalid.Error()})
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			AuthFailures.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": domain.ErrTokenInvalid.Error()})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id set by Auth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
