// Package middleware holds gin middleware shared across the route tree.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/zipcodetw/zipcodetw/helpers/utils"
)

// RequestIDHeader is the header a request-correlation ID is read from and
// echoed back on.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a correlation ID to the gin context (key "request_id")
// and response header, generating one when the caller didn't supply it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = utils.GenerateUUID()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
