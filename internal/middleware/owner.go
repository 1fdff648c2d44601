package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketplace/invoicing/internal/constants"
)

// RequireUser resolves the acting user from the X-User-ID header set by the upstream gateway.
// Requests without a valid user id are rejected with 401.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(constants.UserIDHeader))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + constants.UserIDHeader + " header"})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid " + constants.UserIDHeader + " header"})
			return
		}

		c.Set(constants.UserIDContextKey, userID)
		c.Next()
	}
}

// GetUserID returns the user resolved by RequireUser
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(constants.UserIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}
