package boardclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/gorilla/websocket"
)

// clientAction mirrors the messages the event endpoint accepts.
type clientAction struct {
	Action string `json:"action"`
	CardID string `json:"cardId,omitempty"`
}

// Socket is a live event subscription feeding a TaskView.
type Socket struct {
	ws   *websocket.Conn
	view *TaskView
}

// DialCard connects to the event endpoint, authenticates with the
// token and joins the view's card room. wsURL is the endpoint address,
// e.g. "ws://localhost:8080/ws".
func DialCard(ctx context.Context, wsURL, token string, view *TaskView) (*Socket, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}

	if err := ws.WriteJSON(clientAction{Action: "join-card", CardID: view.cardID}); err != nil {
		ws.Close()
		return nil, err
	}
	return &Socket{ws: ws, view: view}, nil
}

// Listen reads broadcasts and folds them into the view until the
// connection drops or ctx is done. It always returns a non-nil error.
func (s *Socket) Listen(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.ws.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := s.ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			continue
		}
		s.view.ApplyEvent(env)
	}
}

// Close leaves the card room and closes the connection.
func (s *Socket) Close() error {
	_ = s.ws.WriteJSON(clientAction{Action: "leave-card", CardID: s.view.cardID})
	return s.ws.Close()
}
