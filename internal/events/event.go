package events

import (
	"encoding/json"
	"fmt"
)

// Event names broadcast to room subscribers. Delete events carry the
// bare identifier as data.
const (
	BoardCreated = "board-created"
	BoardUpdated = "board-updated"
	BoardDeleted = "board-deleted"

	TaskCreated    = "task-created"
	TaskUpdated    = "task-updated"
	TaskDeleted    = "task-deleted"
	TaskAssigned   = "task-assigned"
	TaskUnassigned = "task-unassigned"
)

// BoardRoom is the broadcast scope for board-level events, keyed by the
// owner's identity.
func BoardRoom(ownerEmail string) string {
	return fmt.Sprintf("board:%s", ownerEmail)
}

// CardRoom is the broadcast scope for card/task-level events, keyed by
// the card's identifier.
func CardRoom(cardID string) string {
	return fmt.Sprintf("card:%s", cardID)
}

// Envelope is the wire format for one broadcast event. CorrelationID
// echoes the X-Correlation-Id the mutating request carried, so the
// originating client can recognize its own echo.
type Envelope struct {
	Event         string          `json:"event"`
	Room          string          `json:"room"`
	Data          json.RawMessage `json:"data,omitempty"`
	CorrelationID string          `json:"correlationId,omitempty"`
}
