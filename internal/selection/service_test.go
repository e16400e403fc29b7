package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/eventbus"
)

type length int

func (l length) Len() int { return int(l) }

func except(indices ...int) eligibility.Lookup {
	disabled := make(map[int]bool, len(indices))
	for _, i := range indices {
		disabled[i] = true
	}
	return func(i int) domain.Ability {
		if disabled[i] {
			return domain.Disabled
		}
		return domain.Enabled
	}
}

func TestMultiselectKeepsRecency(t *testing.T) {
	picks := NewPickSet(nil, length(10), eligibility.Static(domain.Enabled), true, false)

	require.Equal(t, domain.Enabled, picks.Exact(1))
	require.Equal(t, domain.Enabled, picks.Exact(2))
	assert.Equal(t, []int{1, 2}, picks.Picks())
	assert.Equal(t, 2, picks.Newest())

	picks.Exact(1)
	assert.Equal(t, []int{2, 1}, picks.Picks(), "re-picking refreshes recency")
	assert.Equal(t, 1, picks.Newest())
	assert.True(t, picks.IsPicked(2))
	assert.Equal(t, 2, picks.Len())
}

func TestSingleSelectReplaces(t *testing.T) {
	picks := NewPickSet(nil, length(10), eligibility.Static(domain.Enabled), false, false)
	assert.False(t, picks.Multiselectable())

	picks.Exact(3)
	picks.Exact(5)
	assert.Equal(t, []int{5}, picks.Picks())

	assert.Equal(t, domain.Enabled, picks.Range(0, 8))
	assert.Equal(t, []int{8}, picks.Picks(), "range degrades to picking the far end")

	assert.Equal(t, domain.AbilityNone, picks.All())
	assert.Equal(t, []int{8}, picks.Picks())
}

func TestExactRejectsDisabled(t *testing.T) {
	picks := NewPickSet(nil, length(5), except(2), true, false)

	assert.Equal(t, domain.AbilityNone, picks.Exact(2))
	assert.Equal(t, domain.AbilityNone, picks.Exact(5))
	assert.Equal(t, domain.AbilityNone, picks.Exact(-1))
	assert.Empty(t, picks.Picks())
	assert.Equal(t, domain.None, picks.Newest())
}

func TestSearchPicks(t *testing.T) {
	picks := NewPickSet(nil, length(6), except(0, 5), true, true)

	assert.Equal(t, domain.Enabled, picks.First())
	assert.Equal(t, domain.Enabled, picks.Last())
	assert.Equal(t, []int{1, 4}, picks.Picks())

	picks.Clear()
	assert.Equal(t, domain.Enabled, picks.Next(4))
	assert.Equal(t, []int{1}, picks.Picks(), "next loops past the disabled end")
	assert.Equal(t, domain.Enabled, picks.Previous(1))
	assert.Equal(t, []int{1, 4}, picks.Picks())
}

func TestToggle(t *testing.T) {
	picks := NewPickSet(nil, length(5), except(3), true, false)

	assert.Equal(t, domain.Enabled, picks.Toggle(1))
	assert.True(t, picks.IsPicked(1))
	assert.Equal(t, domain.Enabled, picks.Toggle(1))
	assert.False(t, picks.IsPicked(1))
	assert.Equal(t, domain.AbilityNone, picks.Toggle(3))
}

func TestRange(t *testing.T) {
	picks := NewPickSet(nil, length(10), except(3), true, false)

	assert.Equal(t, domain.Enabled, picks.Range(5, 1))
	assert.Equal(t, []int{5, 4, 2, 1}, picks.Picks(), "the location nearest the far end is newest")

	picks.Clear()
	picks.Exact(2)
	picks.Range(2, 5)
	assert.Equal(t, []int{2, 4, 5}, picks.Picks())
	assert.Equal(t, 5, picks.Newest())

	assert.Equal(t, domain.AbilityNone, picks.Range(3, 3))
}

func TestAllSkipsDisabled(t *testing.T) {
	picks := NewPickSet(nil, length(4), except(1), true, false)

	assert.Equal(t, domain.Enabled, picks.All())
	assert.Equal(t, []int{0, 2, 3}, picks.Picks())

	empty := NewPickSet(nil, length(0), eligibility.Static(domain.Enabled), true, false)
	assert.Equal(t, domain.AbilityNone, empty.All())
}

func TestOmitLeavesOthers(t *testing.T) {
	picks := NewPickSet(nil, length(5), eligibility.Static(domain.Enabled), true, false)
	picks.All()

	assert.True(t, picks.Omit(2))
	assert.False(t, picks.Omit(2))
	assert.Equal(t, []int{0, 1, 3, 4}, picks.Picks())
}

func TestReplaceBypassesEligibility(t *testing.T) {
	picks := NewPickSet(nil, length(5), eligibility.Static(domain.Disabled), false, false)

	picks.Replace([]int{1, 3})
	assert.Equal(t, []int{1, 3}, picks.Picks(), "replace is verbatim, even for single-select")
}

func TestPickEvents(t *testing.T) {
	bus := eventbus.New()
	var events []domain.PicksChangedEvent
	bus.Subscribe(eventbus.EventPicksChanged, func(e eventbus.DomainEvent) {
		events = append(events, e.(domain.PicksChangedEvent))
	})

	picks := NewPickSet(bus, length(5), eligibility.Static(domain.Enabled), false, false)
	picks.Exact(1)
	picks.Exact(1)
	picks.Exact(2)
	picks.Replace([]int{2})
	picks.Clear()

	assert.Equal(t, []domain.PicksChangedEvent{
		{Added: []int{1}, Total: 1},
		{Added: []int{2}, Removed: []int{1}, Total: 1},
		{Removed: []int{2}, Total: 0},
	}, events, "no-op picks and replaces publish nothing")
}
