package reconcile

import (
	"log"
	"slices"

	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/search"
)

// PlaneCursor is the part of a plane cursor the reconciler rewrites
type PlaneCursor interface {
	Location() domain.Coords
	Set(cell domain.Coords)
}

// PlanePicks is the part of a plane pick set the reconciler rewrites
type PlanePicks interface {
	Picks() []domain.Coords
	Replace(picks []domain.Coords)
}

// PlaneReconciler remaps a plane cursor and pick set after structural change
type PlaneReconciler struct {
	cursor PlaneCursor
	picks  PlanePicks
	source eligibility.PlaneSource
	shape  search.Shape
}

// NewPlane creates a plane reconciler. Either cursor or picks may be nil.
func NewPlane(cursor PlaneCursor, picks PlanePicks, source eligibility.PlaneSource, shape search.Shape) *PlaneReconciler {
	return &PlaneReconciler{
		cursor: cursor,
		picks:  picks,
		source: source,
		shape:  shape,
	}
}

// keysShape is the Shape of a key grid
type keysShape [][]string

func (k keysShape) Rows() int { return len(k) }

func (k keysShape) Columns(row int) int {
	if row < 0 || row >= len(k) {
		return 0
	}
	return len(k[row])
}

// Reconcile rewrites cursor and picks for the change from previous to current
func (r *PlaneReconciler) Reconcile(previous, current [][]string) domain.Change {
	if EqualPlane(previous, current) {
		return domain.Change{}
	}

	if inv, ok := r.source.(eligibility.Invalidator); ok {
		inv.Invalidate()
	}

	diff := ComparePlane(previous, current)
	if r.cursor != nil {
		r.reconcileCursor(diff, keysShape(current))
	}
	if r.picks != nil {
		r.reconcilePicks(diff)
	}

	log.Printf("Reconciled plane change: %s (%d -> %d rows)", diff.Change, len(previous), len(current))
	return diff.Change
}

func (r *PlaneReconciler) reconcileCursor(diff PlaneDiff, shape keysShape) {
	location := r.cursor.Location()
	if location.IsNone() {
		return
	}

	if mapped := diff.Lookup(location); !mapped.IsNone() {
		r.cursor.Set(mapped)
		return
	}

	empty := true
	for _, row := range shape {
		if len(row) > 0 {
			empty = false
			break
		}
	}
	if empty {
		r.cursor.Set(domain.NoCoords)
		return
	}

	if !diff.Change.Reordered {
		if found := r.clampInRow(diff, location, shape); !found.IsNone() {
			r.cursor.Set(found)
			return
		}
		if found := r.clampInColumn(diff, location, shape); !found.IsNone() {
			r.cursor.Set(found)
			return
		}
	}

	r.cursor.Set(search.FindRowMajor(domain.Coords{Row: 0, Column: -1}, search.Forward, false, shape, r.source))
}

// clampInRow looks left of the removed cell in its old row for the closest
// survivor, then searches back from that survivor's new cell.
func (r *PlaneReconciler) clampInRow(diff PlaneDiff, location domain.Coords, shape keysShape) domain.Coords {
	if location.Row >= len(diff.Mapping) {
		return domain.NoCoords
	}
	row := diff.Mapping[location.Row]
	for c := min(location.Column, len(row)) - 1; c >= 0; c-- {
		survivor := row[c]
		if survivor.IsNone() {
			continue
		}
		start := domain.Coords{Row: survivor.Row, Column: survivor.Column + 1}
		return search.FindInRow(start, search.Backward, false, shape, r.source)
	}
	return domain.NoCoords
}

// clampInColumn looks above the removed cell in its old column
func (r *PlaneReconciler) clampInColumn(diff PlaneDiff, location domain.Coords, shape keysShape) domain.Coords {
	for row := min(location.Row, len(diff.Mapping)) - 1; row >= 0; row-- {
		survivor := diff.Lookup(domain.Coords{Row: row, Column: location.Column})
		if survivor.IsNone() {
			continue
		}
		start := domain.Coords{Row: survivor.Row + 1, Column: survivor.Column}
		return search.FindInColumn(start, search.Backward, false, shape, r.source)
	}
	return domain.NoCoords
}

func (r *PlaneReconciler) reconcilePicks(diff PlaneDiff) {
	picks := r.picks.Picks()
	remapped := make([]domain.Coords, 0, len(picks))
	for _, p := range picks {
		if mapped := diff.Lookup(p); !mapped.IsNone() {
			remapped = append(remapped, mapped)
		}
	}
	if !slices.Equal(picks, remapped) {
		r.picks.Replace(remapped)
	}
}

// Refresh drops picks that are no longer enabled and moves a cursor resting
// on a disabled cell to the next enabled cell in row-major order, else the
// previous one.
func (r *PlaneReconciler) Refresh() {
	if r.picks != nil {
		picks := r.picks.Picks()
		kept := slices.DeleteFunc(slices.Clone(picks), func(p domain.Coords) bool {
			return !r.contains(p) || !eligibility.IsEnabled(r.source.GetCell(p))
		})
		if !slices.Equal(picks, kept) {
			r.picks.Replace(kept)
		}
	}

	if r.cursor == nil {
		return
	}
	location := r.cursor.Location()
	if location.IsNone() || !r.contains(location) || eligibility.IsEnabled(r.source.GetCell(location)) {
		return
	}
	found := search.FindRowMajor(location, search.Forward, false, r.shape, r.source)
	if found.IsNone() {
		found = search.FindRowMajor(location, search.Backward, false, r.shape, r.source)
	}
	if !found.IsNone() {
		r.cursor.Set(found)
	}
}

func (r *PlaneReconciler) contains(c domain.Coords) bool {
	return !c.IsNone() && c.Row < r.shape.Rows() && c.Column < r.shape.Columns(c.Row)
}
