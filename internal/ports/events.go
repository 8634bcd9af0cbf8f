package ports

import "context"

const (
	// EventBreakpointChanged is emitted when the active breakpoint changes.
	EventBreakpointChanged = "breakpoint.changed"
	// EventViewportResized is emitted for every host resize, changed or not.
	EventViewportResized = "viewport.resized"
	// EventConfigReloaded is emitted after a configuration file reload.
	EventConfigReloaded = "config.reloaded"
	// EventAccountEmailSubmitted is emitted when the account email form is submitted.
	EventAccountEmailSubmitted = "account.email_submitted"
	// EventAccountInfoSubmitted is emitted when the account info form is submitted.
	EventAccountInfoSubmitted = "account.info_submitted"
	// EventAccountDeleteRequested is emitted when account deletion is confirmed.
	EventAccountDeleteRequested = "account.delete_requested"
)

// DomainEvent is a significant occurrence with a structured payload.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to subscribers. Publish blocks until all
// handlers ran. Implementations must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes one event. Failures are returned, not panicked.
type EventHandler func(context.Context, DomainEvent) error

// Subscription is a registered handler; Unsubscribe releases it.
type Subscription interface {
	Unsubscribe()
}

// Event is a plain DomainEvent implementation.
type Event struct {
	Type string
	Data map[string]interface{}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Data }
