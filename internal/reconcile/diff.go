// Package reconcile keeps cursor and picks attached to the same logical
// elements when the identity sequence behind them changes.
package reconcile

import (
	"slices"

	"eligible/internal/domain"
)

// Removed marks an old index whose key no longer exists
const Removed = -1

// Diff maps every old index to its new index
type Diff struct {
	Mapping []int
	Change  domain.Change
}

// Compare matches previous and current by key. Duplicate keys are matched in
// order of occurrence.
func Compare(previous, current []string) Diff {
	positions := make(map[string][]int, len(current))
	for i, key := range current {
		positions[key] = append(positions[key], i)
	}

	diff := Diff{Mapping: make([]int, len(previous))}
	matched := 0
	last := -1
	for i, key := range previous {
		queue := positions[key]
		if len(queue) == 0 {
			diff.Mapping[i] = Removed
			diff.Change.Shortened = true
			continue
		}
		next := queue[0]
		positions[key] = queue[1:]
		diff.Mapping[i] = next
		matched++

		if next < last {
			diff.Change.Reordered = true
		}
		last = next
	}
	diff.Change.Lengthened = matched < len(current)

	return diff
}

// Equal reports whether two sequences hold the same keys in the same order
func Equal(previous, current []string) bool {
	return slices.Equal(previous, current)
}

// PlaneDiff maps every old cell to its new cell
type PlaneDiff struct {
	Mapping [][]domain.Coords
	Change  domain.Change
}

// ComparePlane matches previous and current by key, visiting cells in
// row-major order. Reordered means surviving cells changed their row-major
// order, not merely their coordinates.
func ComparePlane(previous, current [][]string) PlaneDiff {
	positions := make(map[string][]domain.Coords)
	total := 0
	for r, row := range current {
		for c, key := range row {
			positions[key] = append(positions[key], domain.Coords{Row: r, Column: c})
			total++
		}
	}

	diff := PlaneDiff{Mapping: make([][]domain.Coords, len(previous))}
	matched := 0
	last := domain.NoCoords
	for r, row := range previous {
		diff.Mapping[r] = make([]domain.Coords, len(row))
		for c, key := range row {
			queue := positions[key]
			if len(queue) == 0 {
				diff.Mapping[r][c] = domain.NoCoords
				diff.Change.Shortened = true
				continue
			}
			next := queue[0]
			positions[key] = queue[1:]
			diff.Mapping[r][c] = next
			matched++

			if !last.IsNone() && before(next, last) {
				diff.Change.Reordered = true
			}
			last = next
		}
	}
	diff.Change.Lengthened = matched < total

	return diff
}

// EqualPlane reports whether two planes hold the same keys in the same shape
func EqualPlane(previous, current [][]string) bool {
	return slices.EqualFunc(previous, current, func(a, b []string) bool {
		return slices.Equal(a, b)
	})
}

// Lookup returns the new cell for an old one, or domain.NoCoords
func (d PlaneDiff) Lookup(old domain.Coords) domain.Coords {
	if old.Row < 0 || old.Row >= len(d.Mapping) || old.Column < 0 || old.Column >= len(d.Mapping[old.Row]) {
		return domain.NoCoords
	}
	return d.Mapping[old.Row][old.Column]
}

func before(a, b domain.Coords) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}
