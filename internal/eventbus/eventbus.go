package eventbus

import (
	"eligible/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCursorMoved        = domain.EventCursorMoved
	EventPlaneCursorMoved   = domain.EventPlaneCursorMoved
	EventPicksChanged       = domain.EventPicksChanged
	EventPlanePicksChanged  = domain.EventPlanePicksChanged
	EventCollectionChanged  = domain.EventCollectionChanged
	EventPlaneChanged       = domain.EventPlaneChanged
	EventEligibilityChanged = domain.EventEligibilityChanged
	EventHistoryRecorded    = domain.EventHistoryRecorded
	EventHistoryRestored    = domain.EventHistoryRestored
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run on the publishing goroutine in subscription order, so a
// handler that reconciles state has finished before Publish returns.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	quiet    map[EventType]bool
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
		quiet: map[EventType]bool{
			// Don't log cursor moves as they're too frequent
			EventCursorMoved:      true,
			EventPlaneCursorMoved: true,
		},
	}
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	if !b.quiet[event.Type()] {
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Make a copy to avoid holding lock during handler execution
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	handlersCopy := make([]subscription, len(subs))
	copy(handlersCopy, subs)
	b.mu.RUnlock()

	for _, sub := range handlersCopy {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					// Copy so in-flight publishes keep their snapshot intact
					next := make([]subscription, 0, len(subs)-1)
					next = append(next, subs[:i]...)
					next = append(next, subs[i+1:]...)
					b.handlers[eventType] = next
					break
				}
			}
		})
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event DomainEvent) {}
func (n *NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
