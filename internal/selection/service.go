// Package selection maintains the set of picked locations.
//
// Picks are kept in insertion order; the last pick is the newest. A
// single-select set never holds more than one pick.
package selection

import (
	"slices"

	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/eventbus"
	"eligible/internal/search"
)

// PickSet tracks the picked locations of a list
type PickSet struct {
	state  *State
	bounds Bounds
	source eligibility.Source
	bus    eventbus.EventBus
}

// NewPickSet creates an empty pick set over bounds
func NewPickSet(bus eventbus.EventBus, bounds Bounds, source eligibility.Source, multiselectable, loops bool) *PickSet {
	if bus == nil {
		bus = &eventbus.NullBus{}
	}
	return &PickSet{
		state: &State{
			Multiselectable: multiselectable,
			Loops:           loops,
		},
		bounds: bounds,
		source: source,
		bus:    bus,
	}
}

// Picks returns a copy of the picks, oldest first
func (p *PickSet) Picks() []int {
	return slices.Clone(p.state.Picks)
}

// Newest returns the most recent pick, or domain.None
func (p *PickSet) Newest() int {
	if len(p.state.Picks) == 0 {
		return domain.None
	}
	return p.state.Picks[len(p.state.Picks)-1]
}

// IsPicked checks if index is picked
func (p *PickSet) IsPicked(index int) bool {
	return slices.Contains(p.state.Picks, index)
}

// Len returns the number of picks
func (p *PickSet) Len() int {
	return len(p.state.Picks)
}

// Multiselectable reports the selection policy
func (p *PickSet) Multiselectable() bool {
	return p.state.Multiselectable
}

// Exact picks index if it is enabled
func (p *PickSet) Exact(index int) domain.Ability {
	if index < 0 || index >= p.bounds.Len() {
		return domain.AbilityNone
	}
	if !eligibility.IsEnabled(p.source.Get(index)) {
		return domain.AbilityNone
	}
	return p.pick(index)
}

// First picks the first enabled location
func (p *PickSet) First() domain.Ability {
	return p.pick(search.FindIn(-1, p.bounds.Len(), search.Forward, false, p.source))
}

// Last picks the last enabled location
func (p *PickSet) Last() domain.Ability {
	length := p.bounds.Len()
	return p.pick(search.FindIn(length, length, search.Backward, false, p.source))
}

// Next picks the first enabled location after from
func (p *PickSet) Next(from int) domain.Ability {
	return p.pick(search.FindIn(from, p.bounds.Len(), search.Forward, p.state.Loops, p.source))
}

// Previous picks the first enabled location before from
func (p *PickSet) Previous(from int) domain.Ability {
	return p.pick(search.FindIn(from, p.bounds.Len(), search.Backward, p.state.Loops, p.source))
}

// Toggle omits index when picked and picks it otherwise
func (p *PickSet) Toggle(index int) domain.Ability {
	if p.IsPicked(index) {
		p.Omit(index)
		return domain.Enabled
	}
	return p.Exact(index)
}

// Range picks every enabled location between from and to inclusive, walking
// from from toward to so that the location nearest to is the newest pick.
// A single-select set picks to alone.
func (p *PickSet) Range(from, to int) domain.Ability {
	if !p.state.Multiselectable {
		return p.Exact(to)
	}

	length := p.bounds.Len()
	step := 1
	if from > to {
		step = -1
	}

	var added []int
	for i := from; ; i += step {
		if i >= 0 && i < length && eligibility.IsEnabled(p.source.Get(i)) {
			if p.add(i) {
				added = append(added, i)
			}
		}
		if i == to {
			break
		}
	}
	if len(added) == 0 && !p.anyEnabled(from, to, length) {
		return domain.AbilityNone
	}

	p.publish(added, nil)
	return domain.Enabled
}

// All picks every enabled location in order. Single-select sets refuse.
func (p *PickSet) All() domain.Ability {
	if !p.state.Multiselectable {
		return domain.AbilityNone
	}
	return p.Range(0, p.bounds.Len()-1)
}

// Omit removes index from the picks, leaving the others untouched
func (p *PickSet) Omit(index int) bool {
	i := slices.Index(p.state.Picks, index)
	if i < 0 {
		return false
	}
	p.state.Picks = slices.Delete(p.state.Picks, i, i+1)
	p.publish(nil, []int{index})
	return true
}

// Clear removes every pick
func (p *PickSet) Clear() {
	if len(p.state.Picks) == 0 {
		return
	}
	removed := p.state.Picks
	p.state.Picks = nil
	p.publish(nil, removed)
}

// Replace assigns picks verbatim without checking eligibility. History
// restore uses it; the snapshot is trusted to have been valid when recorded.
func (p *PickSet) Replace(picks []int) {
	old := p.state.Picks
	p.state.Picks = slices.Clone(picks)

	var added, removed []int
	for _, i := range p.state.Picks {
		if !slices.Contains(old, i) {
			added = append(added, i)
		}
	}
	for _, i := range old {
		if !slices.Contains(p.state.Picks, i) {
			removed = append(removed, i)
		}
	}
	if !slices.Equal(old, p.state.Picks) {
		p.publish(added, removed)
	}
}

func (p *PickSet) pick(index int) domain.Ability {
	if index == domain.None {
		return domain.AbilityNone
	}

	var removed []int
	if !p.state.Multiselectable {
		if len(p.state.Picks) == 1 && p.state.Picks[0] == index {
			return domain.Enabled
		}
		removed = p.state.Picks
		p.state.Picks = nil
	}

	var added []int
	if p.add(index) {
		added = []int{index}
	}
	p.publish(added, removed)
	return domain.Enabled
}

// add appends index as the newest pick, refreshing its recency when it is
// already picked. It reports whether index is new to the set.
func (p *PickSet) add(index int) bool {
	if i := slices.Index(p.state.Picks, index); i >= 0 {
		p.state.Picks = append(slices.Delete(p.state.Picks, i, i+1), index)
		return false
	}
	p.state.Picks = append(p.state.Picks, index)
	return true
}

func (p *PickSet) anyEnabled(from, to, length int) bool {
	if from > to {
		from, to = to, from
	}
	for i := max(from, 0); i <= to && i < length; i++ {
		if eligibility.IsEnabled(p.source.Get(i)) {
			return true
		}
	}
	return false
}

func (p *PickSet) publish(added, removed []int) {
	p.bus.Publish(domain.PicksChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(p.state.Picks),
	})
}
