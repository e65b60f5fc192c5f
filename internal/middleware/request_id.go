package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/card-rewards-gateway/internal/requestid"
)

const maxRequestIDLen = 128

// RequestID reuses the caller's X-Request-ID or assigns a new one, echoes it
// on the response and stores it in the request context for upstream calls.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Header(requestid.Header, id)
		c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
		c.Next()
	}
}
