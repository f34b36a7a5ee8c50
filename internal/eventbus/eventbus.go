package eventbus

import (
	"runtime/debug"
	"sync"

	"griddle/internal/domain"
	"griddle/internal/logutil"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventDataChanged      = domain.EventDataChanged
	EventPageChanged      = domain.EventPageChanged
	EventSortChanged      = domain.EventSortChanged
	EventSelectionChanged = domain.EventSelectionChanged
	EventFilterChanged    = domain.EventFilterChanged
	EventError            = domain.EventError
	EventLoadRequested    = domain.EventLoadRequested
	EventLoadStarted      = domain.EventLoadStarted
	EventDataLoaded       = domain.EventDataLoaded
	EventLoadFailed       = domain.EventLoadFailed
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type DataChangedEvent = domain.DataChangedEvent
type PageChangedEvent = domain.PageChangedEvent
type SortChangedEvent = domain.SortChangedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type FilterChangedEvent = domain.FilterChangedEvent
type ErrorEvent = domain.ErrorEvent
type LoadRequestedEvent = domain.LoadRequestedEvent
type LoadStartedEvent = domain.LoadStartedEvent
type DataLoadedEvent = domain.DataLoadedEvent
type LoadFailedEvent = domain.LoadFailedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription
}

type subscription struct {
	id      int
	handler EventHandler
}

// New creates a new event bus
func New() EventBus {
	return &bus{handlers: make(map[EventType][]subscription)}
}

// Publish delivers the event to every subscriber of its type. Handlers
// run inline on the publishing goroutine, in subscription order, so a
// subscriber observes the state an operation left behind before the
// publisher regains control.
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventFilterChanged, EventSelectionChanged:
		// Fired per keystroke / per toggle, too frequent to log
	default:
		logutil.Debugf("eventbus: publishing %s", event.Type())
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		invoke(s.handler, event)
	}
}

// invoke shields the bus from a panicking subscriber.
func invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Errorf("event handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
