package reconcile

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eligible/internal/domain"
	"eligible/internal/eligibility"
)

type fakeCursor struct {
	location int
	sets     int
}

func (c *fakeCursor) Location() int { return c.location }

func (c *fakeCursor) Set(index int) {
	c.location = index
	c.sets++
}

type fakePicks struct {
	picks    []int
	replaces int
}

func (p *fakePicks) Picks() []int { return slices.Clone(p.picks) }

func (p *fakePicks) Replace(picks []int) {
	p.picks = slices.Clone(picks)
	p.replaces++
}

type length int

func (l length) Len() int { return int(l) }

// countingSource records invalidations
type countingSource struct {
	eligibility.Static
	invalidations int
}

func (s *countingSource) Invalidate() { s.invalidations++ }

func keys(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("k%d", i)
	}
	return out
}

func except(indices ...int) eligibility.Lookup {
	return func(i int) domain.Ability {
		if slices.Contains(indices, i) {
			return domain.Disabled
		}
		return domain.Enabled
	}
}

func TestReorderFollowsTheElement(t *testing.T) {
	previous := keys(10)
	current := append(slices.Clone(previous[1:]), previous[0])

	cursor := &fakeCursor{location: 0}
	r := New(cursor, nil, eligibility.Static(domain.Enabled), length(10))

	change := r.Reconcile(previous, current)
	assert.Equal(t, domain.Change{Reordered: true}, change)
	assert.Equal(t, 9, cursor.Location())
}

func TestRemovingTheLastElementMovesToTheNewLastEligible(t *testing.T) {
	previous := keys(10)
	current := previous[:9]

	cursor := &fakeCursor{location: 9}
	r := New(cursor, nil, except(8), length(9))

	change := r.Reconcile(previous, current)
	assert.Equal(t, domain.Change{Shortened: true}, change)
	assert.Equal(t, 7, cursor.Location())
}

func TestRemovingInTheMiddleClampsBackward(t *testing.T) {
	previous := []string{"a", "b", "c", "d", "e"}
	current := []string{"a", "b", "d", "e"}

	cursor := &fakeCursor{location: 2}
	New(cursor, nil, eligibility.Static(domain.Enabled), length(4)).Reconcile(previous, current)
	assert.Equal(t, 1, cursor.Location(), "focus lands on the surviving predecessor")

	cursor = &fakeCursor{location: 2}
	New(cursor, nil, except(1), length(4)).Reconcile(previous, current)
	assert.Equal(t, 0, cursor.Location(), "a disabled predecessor is skipped")
}

func TestRemovingTheFirstElementFallsBackToFirstEligible(t *testing.T) {
	cursor := &fakeCursor{location: 0}
	New(cursor, nil, except(0), length(3)).Reconcile([]string{"a", "b", "c", "d"}, []string{"b", "c", "d"})
	assert.Equal(t, 1, cursor.Location())
}

func TestRemoveAndReorderResetsToFirstEligible(t *testing.T) {
	previous := []string{"a", "b", "c", "d"}
	current := []string{"d", "c", "a"}

	cursor := &fakeCursor{location: 1}
	change := New(cursor, nil, except(0), length(3)).Reconcile(previous, current)

	assert.Equal(t, domain.Change{Shortened: true, Reordered: true}, change)
	assert.Equal(t, 1, cursor.Location())
}

func TestEmptiedCollectionClearsCursor(t *testing.T) {
	cursor := &fakeCursor{location: 1}
	picks := &fakePicks{picks: []int{0, 1}}
	New(cursor, picks, eligibility.Static(domain.Enabled), length(0)).Reconcile([]string{"a", "b"}, nil)

	assert.Equal(t, domain.None, cursor.Location())
	assert.Empty(t, picks.Picks())
}

func TestUnsetCursorStaysUnset(t *testing.T) {
	cursor := &fakeCursor{location: domain.None}
	New(cursor, nil, eligibility.Static(domain.Enabled), length(2)).Reconcile([]string{"a", "b"}, []string{"b", "a"})

	assert.Equal(t, domain.None, cursor.Location())
	assert.Zero(t, cursor.sets)
}

func TestIdenticalRefillIsANoOp(t *testing.T) {
	source := &countingSource{Static: eligibility.Static(domain.Enabled)}
	cursor := &fakeCursor{location: 3}
	picks := &fakePicks{picks: []int{1, 3}}
	r := New(cursor, picks, source, length(5))

	change := r.Reconcile(keys(5), keys(5))

	assert.True(t, change.IsNone())
	assert.Zero(t, cursor.sets)
	assert.Zero(t, picks.replaces)
	assert.Zero(t, source.invalidations, "cached eligibility is still valid")
	assert.Equal(t, []int{1, 3}, picks.Picks())
}

func TestStructuralChangeInvalidatesCache(t *testing.T) {
	source := &countingSource{Static: eligibility.Static(domain.Enabled)}
	New(nil, nil, source, length(2)).Reconcile([]string{"a", "b"}, []string{"b", "a"})

	assert.Equal(t, 1, source.invalidations)
}

func TestPicksAreRemappedAndRemovedPicksDropped(t *testing.T) {
	previous := []string{"a", "b", "c", "d"}
	current := []string{"d", "a", "c"}

	picks := &fakePicks{picks: []int{3, 1, 0}}
	New(nil, picks, eligibility.Static(domain.Enabled), length(3)).Reconcile(previous, current)

	assert.Equal(t, []int{0, 1}, picks.Picks(), "recency order is kept")
}

func TestRefreshDropsDisabledPicks(t *testing.T) {
	disabled := map[int]bool{}
	source := eligibility.Lookup(func(i int) domain.Ability {
		if disabled[i] {
			return domain.Disabled
		}
		return domain.Enabled
	})

	picks := &fakePicks{picks: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}
	r := New(nil, picks, source, length(10))

	for i := 1; i < 10; i += 2 {
		disabled[i] = true
	}
	r.Refresh()

	assert.Equal(t, []int{0, 2, 4, 6, 8}, picks.Picks())

	r.Refresh()
	assert.Equal(t, 1, picks.replaces, "nothing left to drop")
}

func TestRefreshMovesCursorOffDisabled(t *testing.T) {
	tests := []struct {
		name     string
		location int
		source   eligibility.Source
		want     int
	}{
		{"prefers the following location", 3, except(3), 4},
		{"falls back to the preceding location", 4, except(4), 3},
		{"stays when nothing is enabled", 2, eligibility.Static(domain.Disabled), 2},
		{"leaves an enabled location alone", 2, except(3), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := &fakeCursor{location: tt.location}
			New(cursor, nil, tt.source, length(5)).Refresh()
			require.Equal(t, tt.want, cursor.Location())
		})
	}
}
