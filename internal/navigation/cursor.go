// Package navigation moves a focused cursor over eligible locations.
package navigation

import (
	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/eventbus"
	"eligible/internal/search"
)

const defaultPageSize = 10

// Cursor tracks the focused location of a list
type Cursor struct {
	state  *State
	bounds Bounds
	source eligibility.Source
	bus    eventbus.EventBus
}

// NewCursor creates an unset cursor over bounds
func NewCursor(bus eventbus.EventBus, bounds Bounds, source eligibility.Source, loops bool) *Cursor {
	if bus == nil {
		bus = &eventbus.NullBus{}
	}
	return &Cursor{
		state: &State{
			Location: domain.None,
			Loops:    loops,
			PageSize: defaultPageSize,
		},
		bounds: bounds,
		source: source,
		bus:    bus,
	}
}

// Location returns the focused index, or domain.None when unset
func (c *Cursor) Location() int {
	return c.state.Location
}

// Loops reports whether next and previous wrap around
func (c *Cursor) Loops() bool {
	return c.state.Loops
}

// SetPageSize sets the step used by page navigation
func (c *Cursor) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	c.state.PageSize = size
}

// Exact focuses index if it is enabled. No searching happens.
func (c *Cursor) Exact(index int) domain.Ability {
	if index < 0 || index >= c.bounds.Len() {
		return domain.AbilityNone
	}
	if !eligibility.IsEnabled(c.source.Get(index)) {
		return domain.AbilityNone
	}
	return c.moveTo(index)
}

// First focuses the first enabled location
func (c *Cursor) First() domain.Ability {
	return c.moveTo(search.FindIn(-1, c.bounds.Len(), search.Forward, false, c.source))
}

// Last focuses the last enabled location
func (c *Cursor) Last() domain.Ability {
	length := c.bounds.Len()
	return c.moveTo(search.FindIn(length, length, search.Backward, false, c.source))
}

// Next focuses the first enabled location after from
func (c *Cursor) Next(from int) domain.Ability {
	return c.moveTo(search.FindIn(from, c.bounds.Len(), search.Forward, c.state.Loops, c.source))
}

// Previous focuses the first enabled location before from
func (c *Cursor) Previous(from int) domain.Ability {
	return c.moveTo(search.FindIn(from, c.bounds.Len(), search.Backward, c.state.Loops, c.source))
}

// Navigate moves relative to the current location. An unset cursor enters
// from the first or last enabled location depending on direction.
func (c *Cursor) Navigate(direction Direction) domain.Ability {
	switch direction {
	case DirectionHome, DirectionFirst:
		return c.First()
	case DirectionEnd, DirectionLast:
		return c.Last()
	}

	if c.state.Location == domain.None {
		switch direction {
		case DirectionDown, DirectionRight, DirectionNext, DirectionPageDown:
			return c.First()
		case DirectionUp, DirectionLeft, DirectionPrevious, DirectionPageUp:
			return c.Last()
		}
		return domain.AbilityNone
	}

	switch direction {
	case DirectionDown, DirectionRight, DirectionNext:
		return c.Next(c.state.Location)
	case DirectionUp, DirectionLeft, DirectionPrevious:
		return c.Previous(c.state.Location)
	case DirectionPageDown:
		return c.pageDown()
	case DirectionPageUp:
		return c.pageUp()
	}
	return domain.AbilityNone
}

// Set moves the cursor without checking eligibility. It exists for history
// restore and reconciliation, which already know where the cursor belongs.
func (c *Cursor) Set(index int) {
	c.update(index)
}

// Page navigation prefers the enabled location closest to the target between
// the cursor and the target, then looks past the target. It never wraps.
func (c *Cursor) pageDown() domain.Ability {
	length := c.bounds.Len()
	target := c.state.Location + c.state.PageSize
	if target >= length-1 {
		return c.Last()
	}
	found := search.FindIn(target+1, length, search.Backward, false, c.source)
	if found <= c.state.Location {
		found = search.FindIn(target, length, search.Forward, false, c.source)
	}
	return c.moveTo(found)
}

func (c *Cursor) pageUp() domain.Ability {
	length := c.bounds.Len()
	target := c.state.Location - c.state.PageSize
	if target <= 0 {
		return c.First()
	}
	found := search.FindIn(target-1, length, search.Forward, false, c.source)
	if found == domain.None || found >= c.state.Location {
		found = search.FindIn(target, length, search.Backward, false, c.source)
	}
	return c.moveTo(found)
}

func (c *Cursor) moveTo(index int) domain.Ability {
	if index == domain.None {
		return domain.AbilityNone
	}
	c.update(index)
	return domain.Enabled
}

func (c *Cursor) update(index int) {
	old := c.state.Location
	c.state.Location = index
	if old != index {
		c.bus.Publish(domain.CursorMovedEvent{
			Old: old,
			New: index,
		})
	}
}
