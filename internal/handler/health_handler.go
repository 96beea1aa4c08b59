package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/database"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports process liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the service can take traffic. The database is
// required; Redis is optional and only reported.
func (h *HealthHandler) Ready(c *gin.Context) {
	dbReady := database.IsConnected()
	status := http.StatusOK
	if !dbReady {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"database": dbReady,
		"redis":    database.GetRedis() != nil,
	})
}
