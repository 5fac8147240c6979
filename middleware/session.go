package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neonstore-ecommerce/neonstore-admin/models"
	"github.com/neonstore-ecommerce/neonstore-admin/session"
)

// SessionGate blocks dashboard routes when no token is cached. The
// token itself is not re-verified per request; the store API rejects a
// stale one with 401, which the API client turns into an invalidated
// slot, so the next request lands back here.
func SessionGate(gate *session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gate.Token() == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
			c.Abort()
			return
		}
		c.Next()
	}
}
