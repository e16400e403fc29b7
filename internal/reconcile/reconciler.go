package reconcile

import (
	"log"
	"slices"

	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/search"
)

// ListCursor is the part of a cursor the reconciler rewrites
type ListCursor interface {
	Location() int
	Set(index int)
}

// ListPicks is the part of a pick set the reconciler rewrites
type ListPicks interface {
	Picks() []int
	Replace(picks []int)
}

// Bounds reports the length of a list
type Bounds interface {
	Len() int
}

// Reconciler remaps a list cursor and pick set after structural change
type Reconciler struct {
	cursor ListCursor
	picks  ListPicks
	source eligibility.Source
	bounds Bounds
}

// New creates a list reconciler. Either cursor or picks may be nil.
func New(cursor ListCursor, picks ListPicks, source eligibility.Source, bounds Bounds) *Reconciler {
	return &Reconciler{
		cursor: cursor,
		picks:  picks,
		source: source,
		bounds: bounds,
	}
}

// Reconcile rewrites cursor and picks for the change from previous to current.
// Identical sequences are a no-op.
func (r *Reconciler) Reconcile(previous, current []string) domain.Change {
	if Equal(previous, current) {
		return domain.Change{}
	}

	// Cached abilities were computed against the old indices
	if inv, ok := r.source.(eligibility.Invalidator); ok {
		inv.Invalidate()
	}

	diff := Compare(previous, current)
	if r.cursor != nil {
		r.reconcileCursor(diff, len(current))
	}
	if r.picks != nil {
		r.reconcilePicks(diff)
	}

	log.Printf("Reconciled list change: %s (%d -> %d)", diff.Change, len(previous), len(current))
	return diff.Change
}

func (r *Reconciler) reconcileCursor(diff Diff, length int) {
	location := r.cursor.Location()
	if location == domain.None {
		return
	}

	if location < len(diff.Mapping) && diff.Mapping[location] != Removed {
		r.cursor.Set(diff.Mapping[location])
		return
	}

	if length == 0 {
		r.cursor.Set(domain.None)
		return
	}

	// Without reordering, survivors kept their relative order, so the closest
	// surviving predecessor still marks where the removed element used to be.
	if !diff.Change.Reordered {
		for old := min(location, len(diff.Mapping)) - 1; old >= 0; old-- {
			if diff.Mapping[old] == Removed {
				continue
			}
			found := search.FindIn(diff.Mapping[old]+1, length, search.Backward, false, r.source)
			if found != domain.None {
				r.cursor.Set(found)
				return
			}
			break
		}
	}

	r.cursor.Set(search.FindIn(-1, length, search.Forward, false, r.source))
}

func (r *Reconciler) reconcilePicks(diff Diff) {
	picks := r.picks.Picks()
	remapped := make([]int, 0, len(picks))
	for _, p := range picks {
		if p < 0 || p >= len(diff.Mapping) || diff.Mapping[p] == Removed {
			continue
		}
		remapped = append(remapped, diff.Mapping[p])
	}
	if !slices.Equal(picks, remapped) {
		r.picks.Replace(remapped)
	}
}

// Refresh drops picks that are no longer enabled and moves a cursor resting
// on a disabled location to its nearest enabled neighbour, preferring the
// following one. A cursor with no enabled neighbour stays put.
func (r *Reconciler) Refresh() {
	length := r.bounds.Len()

	if r.picks != nil {
		picks := r.picks.Picks()
		kept := slices.DeleteFunc(slices.Clone(picks), func(p int) bool {
			return p < 0 || p >= length || !eligibility.IsEnabled(r.source.Get(p))
		})
		if !slices.Equal(picks, kept) {
			r.picks.Replace(kept)
		}
	}

	if r.cursor == nil {
		return
	}
	location := r.cursor.Location()
	if location == domain.None || location >= length || eligibility.IsEnabled(r.source.Get(location)) {
		return
	}
	found := search.FindIn(location, length, search.Forward, false, r.source)
	if found == domain.None {
		found = search.FindIn(location, length, search.Backward, false, r.source)
	}
	if found != domain.None {
		r.cursor.Set(found)
	}
}
