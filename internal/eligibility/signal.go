package eligibility

import (
	"eligible/internal/domain"
	"eligible/internal/eventbus"
)

// Trigger is a named Signal carried over an event bus. Firing it publishes an
// EligibilityChangedEvent; subscribers only hear events with the same name.
type Trigger struct {
	name string
	bus  eventbus.EventBus
}

// NewTrigger creates a trigger publishing on bus under name
func NewTrigger(bus eventbus.EventBus, name string) *Trigger {
	return &Trigger{name: name, bus: bus}
}

// Name returns the trigger's event source name
func (t *Trigger) Name() string {
	return t.name
}

// Fire marks everything depending on this trigger as stale
func (t *Trigger) Fire() {
	t.bus.Publish(domain.EligibilityChangedEvent{Source: t.name})
}

// Subscribe implements Signal
func (t *Trigger) Subscribe(fn func()) func() {
	return t.bus.Subscribe(eventbus.EventEligibilityChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.EligibilityChangedEvent); ok && event.Source == t.name {
			fn()
		}
	})
}
