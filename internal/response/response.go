package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes used across services and handlers
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeUpstream      = "UPSTREAM_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// ErrorResponse is the wire format for all error replies:
// an error kind string plus an optional underlying detail.
type ErrorResponse struct {
	Code   string `json:"code"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// AppError is the error type services return to handlers
type AppError struct {
	Code    string
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// SendError writes an error response with the given status and code
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Code: code, Error: message})
}

// SendErrorDetail writes an error response carrying the underlying detail string
func SendErrorDetail(c *gin.Context, status int, code, message, detail string) {
	c.JSON(status, ErrorResponse{Code: code, Error: message, Detail: detail})
}

// SendSuccess writes the resource representation directly. A nil payload
// produces an empty body, which delete handlers use with 204.
func SendSuccess(c *gin.Context, status int, data interface{}) {
	if data == nil {
		c.Status(status)
		return
	}
	c.JSON(status, data)
}
