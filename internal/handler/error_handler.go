package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
)

// correlationHeader tags a mutating request so the sender can recognize
// its own broadcast echo.
const correlationHeader = "X-Correlation-Id"

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		zap.L().Warn("service error",
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.String("details", appErr.Details))
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		response.SendErrorDetail(c, statusCode, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	zap.L().Error("unhandled service error", zap.Error(err))
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	case response.ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// actorEmail returns the authenticated identity set by the auth middleware
func actorEmail(c *gin.Context) string {
	return c.GetString(middleware.ContextEmailKey)
}

// correlationID returns the request's correlation tag, if any
func correlationID(c *gin.Context) string {
	return c.GetHeader(correlationHeader)
}

// pathUUID parses a UUID path parameter, replying 400 on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
