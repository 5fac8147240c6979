package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// methodToActionVerb maps HTTP methods to the verb used in log lines.
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// RequestLogger tags every request with an id and logs mutating
// operations. The dashboard persists nothing, so the audit trail is
// the log stream.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		verb, mutating := methodToActionVerb[c.Request.Method]
		if !mutating {
			return
		}
		log.Printf("[audit] %s %s %s status=%d duration=%s request_id=%s",
			verb, c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start), requestID)
	}
}
