package navigation

import (
	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/eventbus"
	"eligible/internal/search"
)

// PlaneCursor tracks the focused cell of a grid.
//
// Next and Previous walk row-major and cross row boundaries (tab order).
// The InRow and InColumn variants stay on their axis (arrow keys).
type PlaneCursor struct {
	state  *PlaneState
	shape  search.Shape
	source eligibility.PlaneSource
	bus    eventbus.EventBus
}

// NewPlaneCursor creates an unset cursor over shape
func NewPlaneCursor(bus eventbus.EventBus, shape search.Shape, source eligibility.PlaneSource, loops bool) *PlaneCursor {
	if bus == nil {
		bus = &eventbus.NullBus{}
	}
	return &PlaneCursor{
		state: &PlaneState{
			Location: domain.NoCoords,
			Loops:    loops,
		},
		shape:  shape,
		source: source,
		bus:    bus,
	}
}

// Location returns the focused cell, or domain.NoCoords when unset
func (c *PlaneCursor) Location() domain.Coords {
	return c.state.Location
}

// Loops reports whether searches wrap around
func (c *PlaneCursor) Loops() bool {
	return c.state.Loops
}

// Exact focuses cell if it is enabled
func (c *PlaneCursor) Exact(cell domain.Coords) domain.Ability {
	if cell.IsNone() || cell.Row >= c.shape.Rows() || cell.Column >= c.shape.Columns(cell.Row) {
		return domain.AbilityNone
	}
	if !eligibility.IsEnabled(c.source.GetCell(cell)) {
		return domain.AbilityNone
	}
	return c.moveTo(cell)
}

// First focuses the first enabled cell in row-major order
func (c *PlaneCursor) First() domain.Ability {
	return c.moveTo(search.FindRowMajor(domain.Coords{Row: 0, Column: -1}, search.Forward, false, c.shape, c.source))
}

// Last focuses the last enabled cell in row-major order
func (c *PlaneCursor) Last() domain.Ability {
	return c.moveTo(search.FindRowMajor(c.pastEnd(), search.Backward, false, c.shape, c.source))
}

// Next focuses the first enabled cell after from in row-major order
func (c *PlaneCursor) Next(from domain.Coords) domain.Ability {
	return c.moveTo(search.FindRowMajor(from, search.Forward, c.state.Loops, c.shape, c.source))
}

// Previous focuses the first enabled cell before from in row-major order
func (c *PlaneCursor) Previous(from domain.Coords) domain.Ability {
	return c.moveTo(search.FindRowMajor(from, search.Backward, c.state.Loops, c.shape, c.source))
}

// NextInRow focuses the next enabled cell in row after column
func (c *PlaneCursor) NextInRow(row, column int) domain.Ability {
	return c.moveTo(search.FindInRow(domain.Coords{Row: row, Column: column}, search.Forward, c.state.Loops, c.shape, c.source))
}

// PreviousInRow focuses the previous enabled cell in row before column
func (c *PlaneCursor) PreviousInRow(row, column int) domain.Ability {
	return c.moveTo(search.FindInRow(domain.Coords{Row: row, Column: column}, search.Backward, c.state.Loops, c.shape, c.source))
}

// NextInColumn focuses the next enabled cell in column below row
func (c *PlaneCursor) NextInColumn(row, column int) domain.Ability {
	return c.moveTo(search.FindInColumn(domain.Coords{Row: row, Column: column}, search.Forward, c.state.Loops, c.shape, c.source))
}

// PreviousInColumn focuses the previous enabled cell in column above row
func (c *PlaneCursor) PreviousInColumn(row, column int) domain.Ability {
	return c.moveTo(search.FindInColumn(domain.Coords{Row: row, Column: column}, search.Backward, c.state.Loops, c.shape, c.source))
}

// FirstInRow focuses the first enabled cell of row
func (c *PlaneCursor) FirstInRow(row int) domain.Ability {
	return c.moveTo(search.FindInRow(domain.Coords{Row: row, Column: -1}, search.Forward, false, c.shape, c.source))
}

// LastInRow focuses the last enabled cell of row
func (c *PlaneCursor) LastInRow(row int) domain.Ability {
	return c.moveTo(search.FindInRow(domain.Coords{Row: row, Column: c.shape.Columns(row)}, search.Backward, false, c.shape, c.source))
}

// Navigate maps arrow keys to the axis-confined searches, tab order to the
// row-major ones, and home/end to the current row.
func (c *PlaneCursor) Navigate(direction Direction) domain.Ability {
	switch direction {
	case DirectionFirst:
		return c.First()
	case DirectionLast:
		return c.Last()
	}

	loc := c.state.Location
	if loc.IsNone() {
		switch direction {
		case DirectionDown, DirectionRight, DirectionNext, DirectionHome:
			return c.First()
		case DirectionUp, DirectionLeft, DirectionPrevious, DirectionEnd:
			return c.Last()
		}
		return domain.AbilityNone
	}

	switch direction {
	case DirectionRight:
		return c.NextInRow(loc.Row, loc.Column)
	case DirectionLeft:
		return c.PreviousInRow(loc.Row, loc.Column)
	case DirectionDown:
		return c.NextInColumn(loc.Row, loc.Column)
	case DirectionUp:
		return c.PreviousInColumn(loc.Row, loc.Column)
	case DirectionNext:
		return c.Next(loc)
	case DirectionPrevious:
		return c.Previous(loc)
	case DirectionHome:
		return c.FirstInRow(loc.Row)
	case DirectionEnd:
		return c.LastInRow(loc.Row)
	}
	return domain.AbilityNone
}

// Set moves the cursor without checking eligibility
func (c *PlaneCursor) Set(cell domain.Coords) {
	c.update(cell)
}

func (c *PlaneCursor) pastEnd() domain.Coords {
	rows := c.shape.Rows()
	if rows == 0 {
		return domain.Coords{Row: 0, Column: 0}
	}
	return domain.Coords{Row: rows - 1, Column: c.shape.Columns(rows - 1)}
}

func (c *PlaneCursor) moveTo(cell domain.Coords) domain.Ability {
	if cell.IsNone() {
		return domain.AbilityNone
	}
	c.update(cell)
	return domain.Enabled
}

func (c *PlaneCursor) update(cell domain.Coords) {
	old := c.state.Location
	c.state.Location = cell
	if old != cell {
		c.bus.Publish(domain.PlaneCursorMovedEvent{
			Old: old,
			New: cell,
		})
	}
}
