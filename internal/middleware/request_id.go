package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clientatech-analyst/internal/model"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request a correlation id: the caller's
// X-Request-ID if present, a fresh UUID otherwise. The id is echoed
// back in the response header.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(model.ContextKeyRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
