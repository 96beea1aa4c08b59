package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"taskboard-api/internal/events"
	"taskboard-api/internal/response"
	"taskboard-api/internal/util"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// cross-origin browsers are expected; auth happens via token
		return true
	},
}

type WSHandler struct {
	hub       *events.Hub
	jwtSecret string
	logger    *zap.Logger
}

func NewWSHandler(hub *events.Hub, jwtSecret string, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Connect upgrades the request to a websocket. Browsers cannot set an
// Authorization header on the handshake, so the token rides a query
// parameter.
func (h *WSHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Missing token")
		return
	}

	email, err := util.ParseAccessToken(token, h.jwtSecret)
	if err != nil {
		response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Invalid token")
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := events.NewConn(h.hub, ws, email, h.logger)
	conn.Serve()
}
