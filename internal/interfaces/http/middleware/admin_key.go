package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	domainerrors "cybershield.backend/internal/domain/errors"
	"cybershield.backend/internal/interfaces/http/response"
)

// AdminKeyMiddleware gates admin routes behind a shared-secret request
// parameter. The comparison is constant-time, but this is still a shared
// secret with no per-admin identity or rotation; it is a documented weak
// point, not a real credential scheme.
func AdminKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.Query("admin_key")
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
			response.Error(c, domainerrors.Forbidden("Invalid admin key"))
			c.Abort()
			return
		}
		c.Next()
	}
}
