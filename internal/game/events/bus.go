package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// EventBus delivers session events synchronously. Handlers run on the
// publishing goroutine, in the middle of the session action that raised them,
// so they must not call back into the session.
type EventBus struct {
	subscribers  map[string]Subscriber
	funcHandlers map[string][]EventHandler
	mu           sync.RWMutex
	logger       zerolog.Logger
}

// NewEventBus creates a bus that logs through logger
func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		subscribers:  make(map[string]Subscriber),
		funcHandlers: make(map[string][]EventHandler),
		logger:       logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers a subscriber, replacing any earlier one with the same ID.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[subscriber.ID()] = subscriber
	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added")
}

// SubscribeFunc registers handler for each of the given event types.
func (eb *EventBus) SubscribeFunc(handler EventHandler, eventTypes ...string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for _, eventType := range eventTypes {
		eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)
	}
	eb.logger.Debug().Strs("event_types", eventTypes).Msg("Handler added")
}

// Publish hands event to every interested subscriber and handler, then logs
// it with the move that produced it.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()
	delivered := 0

	for id, subscriber := range eb.subscribers {
		if subscriber.InterestedIn(eventType) {
			eb.deliver(event, "subscriber", id, subscriber.HandleEvent)
			delivered++
		}
	}
	for _, handler := range eb.funcHandlers[eventType] {
		eb.deliver(event, "handler", eventType, handler)
		delivered++
	}

	entry := eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID())
	if m, ok := event.(Sequenced); ok {
		entry = entry.Int("move", m.Move())
	}
	entry.Int("delivered", delivered).Msg("Event published")
}

// deliver runs one handler, containing a panic so the remaining handlers and
// the session action still complete.
func (eb *EventBus) deliver(event Event, kind, id string, handle EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str(kind, id).
				Str("event_type", event.Type()).
				Str("game_id", event.GameID()).
				Interface("panic", r).
				Msg("Event handler panicked")
		}
	}()
	handle(event)
}
