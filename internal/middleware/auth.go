package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/response"
	"taskboard-api/internal/util"
)

// ContextEmailKey is the gin context key holding the authenticated email
const ContextEmailKey = "email"

// Auth validates the bearer token before any handler logic runs.
// A missing or malformed header is 401; a bad signature or expired
// token is 403.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		email, err := util.ParseAccessToken(parts[1], jwtSecret)
		if err != nil {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}
