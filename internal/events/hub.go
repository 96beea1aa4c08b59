package events

import (
	"context"

	"go.uber.org/zap"

	"taskboard-api/internal/database"
	"taskboard-api/internal/metrics"
)

type joinRequest struct {
	conn *Conn
	room string
}

type outbound struct {
	room    string
	payload []byte
}

// Hub owns the room membership table. All mutations flow through its
// channels and are applied by the single run goroutine, so no locking
// is needed anywhere in the fan-out path.
type Hub struct {
	register   chan *Conn
	unregister chan *Conn
	join       chan joinRequest
	leave      chan joinRequest
	broadcast  chan outbound

	rooms map[string]map[*Conn]bool
	conns map[*Conn]map[string]bool

	// one Redis subscription per room with local members, so events
	// published by other instances reach this one
	subs map[string]*roomSub

	logger  *zap.Logger
	metrics *metrics.Metrics
}

type roomSub struct {
	cancel context.CancelFunc
}

func NewHub(logger *zap.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		register:   make(chan *Conn),
		unregister: make(chan *Conn),
		join:       make(chan joinRequest),
		leave:      make(chan joinRequest),
		broadcast:  make(chan outbound, 256),
		rooms:      make(map[string]map[*Conn]bool),
		conns:      make(map[*Conn]map[string]bool),
		subs:       make(map[string]*roomSub),
		logger:     logger,
		metrics:    m,
	}
}

// Run processes hub commands until ctx is cancelled. It must be running
// before any connection is registered.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for room := range h.subs {
				h.stopRoomSub(room)
			}
			return

		case conn := <-h.register:
			h.conns[conn] = make(map[string]bool)
			if h.metrics != nil {
				h.metrics.WSConnectionOpened()
			}

		case conn := <-h.unregister:
			h.dropConn(conn)

		case req := <-h.join:
			h.joinRoom(req.conn, req.room)

		case req := <-h.leave:
			h.leaveRoom(req.conn, req.room)

		case msg := <-h.broadcast:
			h.fanOut(msg.room, msg.payload)
		}
	}
}

// Register adds a connection to the hub. The connection is in no rooms
// until it joins one.
func (h *Hub) Register(conn *Conn) {
	h.register <- conn
}

// Unregister removes a connection and its room memberships.
func (h *Hub) Unregister(conn *Conn) {
	h.unregister <- conn
}

// Join subscribes conn to room. Joining a room twice is a no-op.
func (h *Hub) Join(conn *Conn, room string) {
	h.join <- joinRequest{conn: conn, room: room}
}

// Leave unsubscribes conn from room.
func (h *Hub) Leave(conn *Conn, room string) {
	h.leave <- joinRequest{conn: conn, room: room}
}

// Broadcast delivers payload to every local member of room.
func (h *Hub) Broadcast(room string, payload []byte) {
	h.broadcast <- outbound{room: room, payload: payload}
}

func (h *Hub) joinRoom(conn *Conn, room string) {
	memberRooms, ok := h.conns[conn]
	if !ok {
		return
	}
	if memberRooms[room] {
		return
	}
	memberRooms[room] = true

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Conn]bool)
		h.rooms[room] = members
		h.startRoomSub(room)
	}
	members[conn] = true
	h.updateRoomGauge()
}

func (h *Hub) leaveRoom(conn *Conn, room string) {
	memberRooms, ok := h.conns[conn]
	if !ok || !memberRooms[room] {
		return
	}
	delete(memberRooms, room)

	if members, ok := h.rooms[room]; ok {
		delete(members, conn)
		if len(members) == 0 {
			delete(h.rooms, room)
			h.stopRoomSub(room)
		}
	}
	h.updateRoomGauge()
}

func (h *Hub) dropConn(conn *Conn) {
	memberRooms, ok := h.conns[conn]
	if !ok {
		return
	}
	for room := range memberRooms {
		if members, ok := h.rooms[room]; ok {
			delete(members, conn)
			if len(members) == 0 {
				delete(h.rooms, room)
				h.stopRoomSub(room)
			}
		}
	}
	delete(h.conns, conn)
	close(conn.send)
	if h.metrics != nil {
		h.metrics.WSConnectionClosed()
	}
	h.updateRoomGauge()
}

func (h *Hub) fanOut(room string, payload []byte) {
	for conn := range h.rooms[room] {
		select {
		case conn.send <- payload:
		default:
			// slow consumer, cut it loose rather than block the hub
			h.logger.Warn("dropping slow websocket consumer", zap.String("room", room))
			if h.metrics != nil {
				h.metrics.IncrementEventDropped()
			}
			h.dropConn(conn)
		}
	}
}

func (h *Hub) startRoomSub(room string) {
	ctx, cancel := context.WithCancel(context.Background())
	pubsub := database.SubscribeRoomEvents(ctx, room)
	if pubsub == nil {
		cancel()
		return
	}
	h.subs[room] = &roomSub{cancel: cancel}

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				h.Broadcast(room, []byte(msg.Payload))
			}
		}
	}()
}

func (h *Hub) stopRoomSub(room string) {
	if sub, ok := h.subs[room]; ok {
		sub.cancel()
		delete(h.subs, room)
	}
}

func (h *Hub) updateRoomGauge() {
	if h.metrics != nil {
		h.metrics.SetRoomsActive(len(h.rooms))
	}
}
