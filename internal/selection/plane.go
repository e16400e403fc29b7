package selection

import (
	"slices"

	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/eventbus"
	"eligible/internal/search"
)

// PlanePickSet tracks the picked cells of a grid
type PlanePickSet struct {
	state  *PlaneState
	shape  search.Shape
	source eligibility.PlaneSource
	bus    eventbus.EventBus
}

// NewPlanePickSet creates an empty pick set over shape
func NewPlanePickSet(bus eventbus.EventBus, shape search.Shape, source eligibility.PlaneSource, multiselectable, loops bool) *PlanePickSet {
	if bus == nil {
		bus = &eventbus.NullBus{}
	}
	return &PlanePickSet{
		state: &PlaneState{
			Multiselectable: multiselectable,
			Loops:           loops,
		},
		shape:  shape,
		source: source,
		bus:    bus,
	}
}

// Picks returns a copy of the picks, oldest first
func (p *PlanePickSet) Picks() []domain.Coords {
	return slices.Clone(p.state.Picks)
}

// Newest returns the most recent pick, or domain.NoCoords
func (p *PlanePickSet) Newest() domain.Coords {
	if len(p.state.Picks) == 0 {
		return domain.NoCoords
	}
	return p.state.Picks[len(p.state.Picks)-1]
}

// IsPicked checks if cell is picked
func (p *PlanePickSet) IsPicked(cell domain.Coords) bool {
	return slices.Contains(p.state.Picks, cell)
}

// Len returns the number of picks
func (p *PlanePickSet) Len() int {
	return len(p.state.Picks)
}

// Multiselectable reports the selection policy
func (p *PlanePickSet) Multiselectable() bool {
	return p.state.Multiselectable
}

// Exact picks cell if it is enabled
func (p *PlanePickSet) Exact(cell domain.Coords) domain.Ability {
	if cell.IsNone() || cell.Row >= p.shape.Rows() || cell.Column >= p.shape.Columns(cell.Row) {
		return domain.AbilityNone
	}
	if !eligibility.IsEnabled(p.source.GetCell(cell)) {
		return domain.AbilityNone
	}
	return p.pick(cell)
}

// First picks the first enabled cell in row-major order
func (p *PlanePickSet) First() domain.Ability {
	return p.pick(search.FindRowMajor(domain.Coords{Row: 0, Column: -1}, search.Forward, false, p.shape, p.source))
}

// Last picks the last enabled cell in row-major order
func (p *PlanePickSet) Last() domain.Ability {
	rows := p.shape.Rows()
	end := domain.Coords{Row: 0, Column: 0}
	if rows > 0 {
		end = domain.Coords{Row: rows - 1, Column: p.shape.Columns(rows - 1)}
	}
	return p.pick(search.FindRowMajor(end, search.Backward, false, p.shape, p.source))
}

// Next picks the first enabled cell after from in row-major order
func (p *PlanePickSet) Next(from domain.Coords) domain.Ability {
	return p.pick(search.FindRowMajor(from, search.Forward, p.state.Loops, p.shape, p.source))
}

// Previous picks the first enabled cell before from in row-major order
func (p *PlanePickSet) Previous(from domain.Coords) domain.Ability {
	return p.pick(search.FindRowMajor(from, search.Backward, p.state.Loops, p.shape, p.source))
}

// NextInRow picks the next enabled cell in row after column
func (p *PlanePickSet) NextInRow(row, column int) domain.Ability {
	return p.pick(search.FindInRow(domain.Coords{Row: row, Column: column}, search.Forward, p.state.Loops, p.shape, p.source))
}

// PreviousInRow picks the previous enabled cell in row before column
func (p *PlanePickSet) PreviousInRow(row, column int) domain.Ability {
	return p.pick(search.FindInRow(domain.Coords{Row: row, Column: column}, search.Backward, p.state.Loops, p.shape, p.source))
}

// NextInColumn picks the next enabled cell in column below row
func (p *PlanePickSet) NextInColumn(row, column int) domain.Ability {
	return p.pick(search.FindInColumn(domain.Coords{Row: row, Column: column}, search.Forward, p.state.Loops, p.shape, p.source))
}

// PreviousInColumn picks the previous enabled cell in column above row
func (p *PlanePickSet) PreviousInColumn(row, column int) domain.Ability {
	return p.pick(search.FindInColumn(domain.Coords{Row: row, Column: column}, search.Backward, p.state.Loops, p.shape, p.source))
}

// Toggle omits cell when picked and picks it otherwise
func (p *PlanePickSet) Toggle(cell domain.Coords) domain.Ability {
	if p.IsPicked(cell) {
		p.Omit(cell)
		return domain.Enabled
	}
	return p.Exact(cell)
}

// Range picks every enabled cell between from and to inclusive in row-major
// order, walking from from toward to so that the cell nearest to is the
// newest pick. A single-select set picks to alone.
func (p *PlanePickSet) Range(from, to domain.Coords) domain.Ability {
	if !p.state.Multiselectable {
		return p.Exact(to)
	}

	lo, hi := from, to
	if rowMajorLess(hi, lo) {
		lo, hi = hi, lo
	}
	var cells []domain.Coords
	for r := max(lo.Row, 0); r <= hi.Row && r < p.shape.Rows(); r++ {
		for c := 0; c < p.shape.Columns(r); c++ {
			cell := domain.Coords{Row: r, Column: c}
			if rowMajorLess(cell, lo) || rowMajorLess(hi, cell) {
				continue
			}
			cells = append(cells, cell)
		}
	}
	if rowMajorLess(to, from) {
		slices.Reverse(cells)
	}
	return p.addAll(cells)
}

// All picks every enabled cell in row-major order. Single-select sets refuse.
func (p *PlanePickSet) All() domain.Ability {
	if !p.state.Multiselectable {
		return domain.AbilityNone
	}

	var cells []domain.Coords
	for r := 0; r < p.shape.Rows(); r++ {
		for c := 0; c < p.shape.Columns(r); c++ {
			cells = append(cells, domain.Coords{Row: r, Column: c})
		}
	}
	return p.addAll(cells)
}

// addAll picks the enabled cells in order and reports none when no cell
// was enabled
func (p *PlanePickSet) addAll(cells []domain.Coords) domain.Ability {
	var added []domain.Coords
	found := false
	for _, cell := range cells {
		if !eligibility.IsEnabled(p.source.GetCell(cell)) {
			continue
		}
		found = true
		if p.add(cell) {
			added = append(added, cell)
		}
	}
	if !found {
		return domain.AbilityNone
	}
	p.publish(added, nil)
	return domain.Enabled
}

func rowMajorLess(a, b domain.Coords) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}

// Omit removes cell from the picks, leaving the others untouched
func (p *PlanePickSet) Omit(cell domain.Coords) bool {
	i := slices.Index(p.state.Picks, cell)
	if i < 0 {
		return false
	}
	p.state.Picks = slices.Delete(p.state.Picks, i, i+1)
	p.publish(nil, []domain.Coords{cell})
	return true
}

// Clear removes every pick
func (p *PlanePickSet) Clear() {
	if len(p.state.Picks) == 0 {
		return
	}
	removed := p.state.Picks
	p.state.Picks = nil
	p.publish(nil, removed)
}

// Replace assigns picks verbatim without checking eligibility
func (p *PlanePickSet) Replace(picks []domain.Coords) {
	old := p.state.Picks
	p.state.Picks = slices.Clone(picks)
	if slices.Equal(old, p.state.Picks) {
		return
	}

	var added, removed []domain.Coords
	for _, c := range p.state.Picks {
		if !slices.Contains(old, c) {
			added = append(added, c)
		}
	}
	for _, c := range old {
		if !slices.Contains(p.state.Picks, c) {
			removed = append(removed, c)
		}
	}
	p.publish(added, removed)
}

func (p *PlanePickSet) pick(cell domain.Coords) domain.Ability {
	if cell.IsNone() {
		return domain.AbilityNone
	}

	var removed []domain.Coords
	if !p.state.Multiselectable {
		if len(p.state.Picks) == 1 && p.state.Picks[0] == cell {
			return domain.Enabled
		}
		removed = p.state.Picks
		p.state.Picks = nil
	}

	var added []domain.Coords
	if p.add(cell) {
		added = []domain.Coords{cell}
	}
	p.publish(added, removed)
	return domain.Enabled
}

func (p *PlanePickSet) add(cell domain.Coords) bool {
	if i := slices.Index(p.state.Picks, cell); i >= 0 {
		p.state.Picks = append(slices.Delete(p.state.Picks, i, i+1), cell)
		return false
	}
	p.state.Picks = append(p.state.Picks, cell)
	return true
}

func (p *PlanePickSet) publish(added, removed []domain.Coords) {
	p.bus.Publish(domain.PlanePicksChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(p.state.Picks),
	})
}
