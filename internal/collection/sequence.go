// Package collection holds the identity sequences backing list and plane
// locations. Keys are caller-assigned and must stay stable for the lifetime
// of the logical element they identify.
package collection

import (
	"slices"
	"sync"

	"eligible/internal/domain"
	"eligible/internal/eventbus"
)

// Sequence is the identity sequence of a list
type Sequence struct {
	mu   sync.RWMutex
	name string
	keys []string
	bus  eventbus.EventBus
}

// NewSequence creates a named sequence publishing changes on bus
func NewSequence(bus eventbus.EventBus, name string, keys []string) *Sequence {
	return &Sequence{
		name: name,
		keys: slices.Clone(keys),
		bus:  bus,
	}
}

// Name returns the sequence name carried by its change events
func (s *Sequence) Name() string {
	return s.name
}

// Len returns the number of elements
func (s *Sequence) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// Keys returns a copy of the current keys
func (s *Sequence) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.keys)
}

// Key returns the key at index, or "" when out of range
func (s *Sequence) Key(index int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.keys) {
		return ""
	}
	return s.keys[index]
}

// Index returns the first index holding key, or domain.None
func (s *Sequence) Index(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := slices.Index(s.keys, key); i >= 0 {
		return i
	}
	return domain.None
}

// Set replaces the sequence and synchronously notifies subscribers, even
// when keys are identical to the current ones. Reconciliation decides
// whether the change is structural.
func (s *Sequence) Set(keys []string) {
	s.mu.Lock()
	previous := s.keys
	s.keys = slices.Clone(keys)
	current := slices.Clone(s.keys)
	s.mu.Unlock()

	s.bus.Publish(domain.CollectionChangedEvent{
		Name:     s.name,
		Previous: previous,
		Current:  current,
	})
}

// Subscribe registers fn for changes to this sequence
func (s *Sequence) Subscribe(fn func(previous, current []string)) func() {
	return s.bus.Subscribe(eventbus.EventCollectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.CollectionChangedEvent); ok && event.Name == s.name {
			fn(event.Previous, event.Current)
		}
	})
}
