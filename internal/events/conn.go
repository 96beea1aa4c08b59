package events

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// ClientMessage is what a connected client sends to manage its room
// subscriptions.
type ClientMessage struct {
	Action string `json:"action"`
	CardID string `json:"cardId,omitempty"`
}

const (
	actionJoinCard   = "join-card"
	actionLeaveCard  = "leave-card"
	actionJoinBoard  = "join-board"
	actionLeaveBoard = "leave-board"
)

// Conn is one websocket subscriber. The send channel is buffered; the
// hub drops the connection instead of blocking when it fills up.
type Conn struct {
	hub    *Hub
	ws     *websocket.Conn
	send   chan []byte
	email  string
	logger *zap.Logger
}

func NewConn(hub *Hub, ws *websocket.Conn, email string, logger *zap.Logger) *Conn {
	return &Conn{
		hub:    hub,
		ws:     ws,
		send:   make(chan []byte, 64),
		email:  email,
		logger: logger,
	}
}

// Serve registers the connection and starts both pumps. It returns once
// the pumps are running.
func (c *Conn) Serve() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

func (c *Conn) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.logger.Warn("ignoring malformed client message", zap.Error(err))
			continue
		}
		c.handle(msg)
	}
}

func (c *Conn) handle(msg ClientMessage) {
	switch msg.Action {
	case actionJoinCard:
		if msg.CardID != "" {
			c.hub.Join(c, CardRoom(msg.CardID))
		}
	case actionLeaveCard:
		if msg.CardID != "" {
			c.hub.Leave(c, CardRoom(msg.CardID))
		}
	case actionJoinBoard:
		c.hub.Join(c, BoardRoom(c.email))
	case actionLeaveBoard:
		c.hub.Leave(c, BoardRoom(c.email))
	default:
		c.logger.Warn("unknown websocket action", zap.String("action", msg.Action))
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
