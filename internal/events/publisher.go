package events

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"taskboard-api/internal/database"
	"taskboard-api/internal/metrics"
)

// Publisher delivers an event to every subscriber of a room. Publish is
// called synchronously after the store write commits, so by the time a
// mutating request returns its event is already on the wire.
type Publisher interface {
	Publish(ctx context.Context, room, event string, data interface{}, correlationID string)
}

// BroadcastPublisher fans events out through Redis when it is
// configured, which reaches every instance's hub via its room
// subscriptions. Without Redis it delivers to the local hub only.
type BroadcastPublisher struct {
	hub     *Hub
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewBroadcastPublisher(hub *Hub, logger *zap.Logger, m *metrics.Metrics) *BroadcastPublisher {
	return &BroadcastPublisher{hub: hub, logger: logger, metrics: m}
}

func (p *BroadcastPublisher) Publish(ctx context.Context, room, event string, data interface{}, correlationID string) {
	raw, err := json.Marshal(data)
	if err != nil {
		p.logger.Error("failed to encode event data",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	envelope := Envelope{
		Event:         event,
		Room:          room,
		Data:          raw,
		CorrelationID: correlationID,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		p.logger.Error("failed to encode event envelope",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	if p.metrics != nil {
		p.metrics.IncrementEventPublished(event)
	}

	if database.GetRedis() != nil {
		if err := database.PublishRoomEvent(ctx, room, payload); err != nil {
			p.logger.Warn("redis publish failed, delivering locally",
				zap.String("room", room),
				zap.Error(err))
			p.hub.Broadcast(room, payload)
		}
		return
	}

	p.hub.Broadcast(room, payload)
}
