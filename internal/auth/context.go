package auth

import "github.com/gin-gonic/gin"

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyUserEmail); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsStaff reports whether the authenticated user carries the staff flag.
func IsStaff(c *gin.Context) bool {
	if v, ok := c.Get(ctxKeyIsStaff); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
