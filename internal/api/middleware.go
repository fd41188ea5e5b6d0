package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zdzdigital/booky-backend/internal/auth"
)

// RequireStaff ensures the authenticated user has staff privileges. The
// flag is read from the token claims, so it MUST be used after
// auth.AuthRequired middleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !auth.IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: staff access required"})
			return
		}

		c.Next()
	}
}
