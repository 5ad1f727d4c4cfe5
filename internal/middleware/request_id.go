package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"
	// RequestIDHeader carries the request ID on requests and responses.
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an ID. Inbound X-Request-ID values from
// proxies are kept; otherwise a fresh UUID is assigned. The ID is stored in
// the context and echoed on the response so clients can correlate reports
// with server logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the request ID from the gin context, or "" when the
// middleware has not run.
func GetRequestID(c *gin.Context) string {
	v, _ := c.Get(RequestIDKey)
	id, _ := v.(string)
	return id
}
