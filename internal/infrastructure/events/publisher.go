// Package events delivers viewkit domain events to the structured log and to
// in-process subscribers.
package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/viewkit/internal/ports"
)

// LoggingPublisher writes every event as a log entry, then runs subscribers.
type LoggingPublisher struct {
	logger ports.Logger

	mu     sync.RWMutex
	subs   map[string][]handlerEntry
	nextID int
}

type handlerEntry struct {
	id      int
	handler ports.EventHandler
}

// NewLoggingPublisher creates a publisher backed by logger.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]handlerEntry),
	}
}

// Publish logs the event and invokes its handlers. Handler errors are logged
// and do not stop delivery.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]handlerEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Info(ctx, "domain event", eventFields(event)...)
	}

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}
	return nil
}

// Subscribe registers handler for eventType.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return unsubscribeFunc(nil), nil
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], handlerEntry{id: id, handler: handler})
	p.mu.Unlock()

	return unsubscribeFunc(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		handlers := p.subs[eventType]
		for i, entry := range handlers {
			if entry.id == id {
				p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
				return
			}
		}
	}), nil
}

func eventFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}

type unsubscribeFunc func()

func (f unsubscribeFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

var _ ports.EventPublisher = (*LoggingPublisher)(nil)
