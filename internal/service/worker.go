package service

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/unclebandit/storefront-backend/internal/model"
)

// EventWorker consumes resource events, logs them and keeps a count per
// resource and action.
type EventWorker struct {
	log zerolog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// Constructor
func NewEventWorker(log zerolog.Logger) *EventWorker {
	return &EventWorker{
		log:    log.With().Str("component", "event_worker").Logger(),
		counts: map[string]int{},
	}
}

// Handle is a queue handler. Payloads that cannot be decoded into a complete
// event are logged and dropped (nil error) so they are not retried.
func (w *EventWorker) Handle(payload any) error {
	event, ok := w.decode(payload)
	if !ok {
		return nil
	}

	w.mu.Lock()
	w.counts[event.Resource+"."+event.Action]++
	w.mu.Unlock()

	w.log.Info().
		Str("resource", event.Resource).
		Str("action", event.Action).
		Int64("id", event.ID).
		Time("occurred_at", event.OccurredAt).
		Msg("resource changed")
	return nil
}

func (w *EventWorker) decode(payload any) (model.ResourceEvent, bool) {
	var event model.ResourceEvent

	switch p := payload.(type) {
	case model.ResourceEvent:
		event = p
	case *model.ResourceEvent:
		if p == nil {
			w.log.Warn().Msg("nil event payload")
			return event, false
		}
		event = *p
	case json.RawMessage:
		if err := json.Unmarshal(p, &event); err != nil {
			w.log.Warn().Err(err).Msg("invalid event payload")
			return event, false
		}
	case []byte:
		if err := json.Unmarshal(p, &event); err != nil {
			w.log.Warn().Err(err).Msg("invalid event payload")
			return event, false
		}
	default:
		w.log.Warn().Type("payload_type", payload).Msg("unexpected event payload type")
		return event, false
	}

	if event.Resource == "" || event.Action == "" {
		w.log.Warn().Msg("event without resource or action")
		return event, false
	}
	return event, true
}

// Counts returns a copy of the per "resource.action" totals.
func (w *EventWorker) Counts() map[string]int {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string]int, len(w.counts))
	for k, v := range w.counts {
		out[k] = v
	}
	return out
}
