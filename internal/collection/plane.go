package collection

import (
	"slices"
	"sync"

	"eligible/internal/domain"
	"eligible/internal/eventbus"
)

// Plane is the identity sequence of a grid. Rows may have different lengths.
type Plane struct {
	mu   sync.RWMutex
	name string
	keys [][]string
	bus  eventbus.EventBus
}

// NewPlane creates a named plane publishing changes on bus
func NewPlane(bus eventbus.EventBus, name string, keys [][]string) *Plane {
	return &Plane{
		name: name,
		keys: clonePlane(keys),
		bus:  bus,
	}
}

// Name returns the plane name carried by its change events
func (p *Plane) Name() string {
	return p.name
}

// Rows returns the number of rows
func (p *Plane) Rows() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.keys)
}

// Columns returns the number of cells in row, or 0 when out of range
func (p *Plane) Columns(row int) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if row < 0 || row >= len(p.keys) {
		return 0
	}
	return len(p.keys[row])
}

// Contains reports whether c addresses a cell
func (p *Plane) Contains(c domain.Coords) bool {
	return c.Column >= 0 && c.Column < p.Columns(c.Row)
}

// Keys returns a deep copy of the current keys
func (p *Plane) Keys() [][]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clonePlane(p.keys)
}

// Key returns the key at c, or "" when out of range
func (p *Plane) Key(c domain.Coords) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if c.Row < 0 || c.Row >= len(p.keys) || c.Column < 0 || c.Column >= len(p.keys[c.Row]) {
		return ""
	}
	return p.keys[c.Row][c.Column]
}

// Set replaces the plane and synchronously notifies subscribers
func (p *Plane) Set(keys [][]string) {
	p.mu.Lock()
	previous := p.keys
	p.keys = clonePlane(keys)
	current := clonePlane(p.keys)
	p.mu.Unlock()

	p.bus.Publish(domain.PlaneChangedEvent{
		Name:     p.name,
		Previous: previous,
		Current:  current,
	})
}

// Subscribe registers fn for changes to this plane
func (p *Plane) Subscribe(fn func(previous, current [][]string)) func() {
	return p.bus.Subscribe(eventbus.EventPlaneChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.PlaneChangedEvent); ok && event.Name == p.name {
			fn(event.Previous, event.Current)
		}
	})
}

func clonePlane(keys [][]string) [][]string {
	out := make([][]string, len(keys))
	for i, row := range keys {
		out[i] = slices.Clone(row)
	}
	return out
}
