package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Gin context keys populated by AuthRequired.
const (
	ctxKeyUserID    = "userID"
	ctxKeyUserEmail = "userEmail"
	ctxKeyIsStaff   = "userIsStaff"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(ctxKeyUserID, claims.UserID())
		c.Set(ctxKeyUserEmail, claims.Email)
		c.Set(ctxKeyIsStaff, claims.IsStaff)

		c.Next()
	}
}
