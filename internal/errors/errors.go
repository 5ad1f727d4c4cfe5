// Package errors provides the standard JSON error responses returned by the
// API. Every helper logs through the request-scoped logger and echoes the
// request ID so clients can correlate reports with server logs.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/middleware"
)

// Error codes carried in response bodies.
const (
	ErrNotFound       = "NOT_FOUND"
	ErrBadRequest     = "BAD_REQUEST"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
	ErrValidation     = "VALIDATION_ERROR"
)

// ErrorResponse is the top-level error response structure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	warn(c, "Resource not found", message, nil)
	respond(c, http.StatusNotFound, ErrNotFound, message, nil)
}

// BadRequest sends a 400 response with optional details.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	warn(c, "Bad request", message, details)
	respond(c, http.StatusBadRequest, ErrBadRequest, message, details)
}

// InternalServerError sends a 500 response. The underlying error is logged
// with full context but never exposed to the client.
func InternalServerError(c *gin.Context, message string, err error) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("Internal server error", err, map[string]interface{}{
			"message":    message,
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
	}

	respond(c, http.StatusInternalServerError, ErrInternalServer, message, nil)
}

// ValidationError sends a 400 response carrying one message per failed field.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	details := make(map[string]interface{}, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = formatValidationError(fieldErr)
	}

	message := "Validation failed for one or more fields"
	warn(c, "Validation error", message, details)
	respond(c, http.StatusBadRequest, ErrValidation, message, details)
}

// respond writes the error body. An empty request ID is omitted from the
// JSON rather than sent blank.
func respond(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: middleware.GetRequestID(c),
		},
	})
}

// warn logs a client-correctable failure through the request logger, if the
// logging middleware has run.
func warn(c *gin.Context, event, message string, details map[string]interface{}) {
	log := middleware.GetLogger(c)
	if log == nil {
		return
	}

	fields := map[string]interface{}{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	}
	if details != nil {
		fields["details"] = details
	}
	log.Warn(event, fields)
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "gt":
		return "Must be greater than " + err.Param()
	case "gte":
		return "Must be greater than or equal to " + err.Param()
	case "lt":
		return "Must be less than " + err.Param()
	case "lte":
		return "Must be less than or equal to " + err.Param()
	case "oneof":
		return "Must be one of: " + err.Param()
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
