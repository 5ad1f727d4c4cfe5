package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/logger"
)

// Recovery converts panics into 500 responses with the standard error body
// and logs the stack trace. The server keeps serving after a panic.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				handlePanic(c, log, r)
			}
		}()

		c.Next()
	}
}

// handlePanic logs the recovered panic and aborts with a 500. The response
// shape mirrors the errors package, which cannot be imported from here.
func handlePanic(c *gin.Context, log *logger.Logger, recovered interface{}) {
	requestID := GetRequestID(c)

	if requestLogger := GetLogger(c); requestLogger != nil {
		log = requestLogger
	}
	log.Error("Panic recovered", fmt.Errorf("panic: %v", recovered), map[string]interface{}{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"stack":      string(debug.Stack()),
	})

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":       "INTERNAL_SERVER_ERROR",
			"message":    "An unexpected error occurred",
			"request_id": requestID,
		},
	})
}
