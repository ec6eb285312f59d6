package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/unclebandit/storefront-backend/internal/model"
	"github.com/unclebandit/storefront-backend/internal/queue"
)

// EventPublisher announces committed writes on Topic
// (queue.TopicResourceEvents unless configured otherwise).
//
// Publishing is best effort: the row is already stored when it runs, so a
// failure is logged and never reported to the caller.
type EventPublisher struct {
	Queue queue.Queue
	Topic string
	Log   zerolog.Logger
	Now   func() time.Time
}

func NewEventPublisher(q queue.Queue, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{Queue: q, Topic: queue.TopicResourceEvents, Log: log, Now: time.Now}
}

func (p *EventPublisher) Publish(resource, action string, id int64, data any) {
	if p == nil || p.Queue == nil {
		return
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	event := model.ResourceEvent{
		Resource:   resource,
		Action:     action,
		ID:         id,
		Data:       data,
		OccurredAt: now().UTC(),
	}
	topic := p.Topic
	if topic == "" {
		topic = queue.TopicResourceEvents
	}
	if err := p.Queue.Publish(topic, event); err != nil {
		p.Log.Warn().Err(err).
			Str("topic", topic).
			Str("resource", resource).
			Str("action", action).
			Int64("id", id).
			Msg("failed to publish resource event")
	}
}
