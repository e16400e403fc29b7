package search

import (
	"eligible/internal/domain"
	"eligible/internal/eligibility"
)

// Shape describes the extent of a possibly ragged plane
type Shape interface {
	Rows() int
	Columns(row int) int
}

// FindInRow holds start.Row fixed and walks columns
func FindInRow(start domain.Coords, direction Direction, loops bool, shape Shape, source eligibility.PlaneSource) domain.Coords {
	if start.Row < 0 || start.Row >= shape.Rows() {
		return domain.NoCoords
	}

	row := start.Row
	column := Find(start.Column, shape.Columns(row), direction, loops, func(c int) domain.Ability {
		return source.GetCell(domain.Coords{Row: row, Column: c})
	})
	if column == domain.None {
		return domain.NoCoords
	}
	return domain.Coords{Row: row, Column: column}
}

// FindInColumn holds start.Column fixed and walks rows. Rows too short to
// contain the column are treated as disabled.
func FindInColumn(start domain.Coords, direction Direction, loops bool, shape Shape, source eligibility.PlaneSource) domain.Coords {
	if start.Column < 0 {
		return domain.NoCoords
	}

	column := start.Column
	row := Find(start.Row, shape.Rows(), direction, loops, func(r int) domain.Ability {
		if column >= shape.Columns(r) {
			return domain.Disabled
		}
		return source.GetCell(domain.Coords{Row: r, Column: column})
	})
	if row == domain.None {
		return domain.NoCoords
	}
	return domain.Coords{Row: row, Column: column}
}

// FindRowMajor walks the plane in row-major order, crossing row boundaries.
// start may sit one column before the first cell of a row or one column past
// its last cell; the walk then begins at the adjacent cell in direction.
func FindRowMajor(start domain.Coords, direction Direction, loops bool, shape Shape, source eligibility.PlaneSource) domain.Coords {
	offsets := rowOffsets(shape)
	total := offsets[len(offsets)-1]
	if total == 0 {
		return domain.NoCoords
	}

	flat := flatten(start, offsets, direction)
	found := Find(flat, total, direction, loops, func(i int) domain.Ability {
		return source.GetCell(unflatten(i, offsets))
	})
	if found == domain.None {
		return domain.NoCoords
	}
	return unflatten(found, offsets)
}

// rowOffsets returns the flat offset of every row plus the total cell count
func rowOffsets(shape Shape) []int {
	rows := shape.Rows()
	offsets := make([]int, rows+1)
	for r := 0; r < rows; r++ {
		offsets[r+1] = offsets[r] + shape.Columns(r)
	}
	return offsets
}

// flatten maps start onto a flat offset. A start one column outside its row
// sits between two cells, so it lands on the neighbour the walk steps away
// from rather than on a real cell that would be skipped.
func flatten(c domain.Coords, offsets []int, direction Direction) int {
	rows := len(offsets) - 1
	switch {
	case c.Row < 0:
		return -1
	case c.Row >= rows:
		return offsets[rows]
	}
	width := offsets[c.Row+1] - offsets[c.Row]
	switch {
	case c.Column < 0 && direction == Backward:
		return offsets[c.Row]
	case c.Column < 0:
		return offsets[c.Row] - 1
	case c.Column >= width && direction == Backward:
		return offsets[c.Row+1]
	case c.Column >= width:
		return offsets[c.Row+1] - 1
	}
	return offsets[c.Row] + c.Column
}

func unflatten(i int, offsets []int) domain.Coords {
	// Empty rows own no offsets
	row := 0
	for r := 0; r < len(offsets)-1; r++ {
		if offsets[r] <= i && i < offsets[r+1] {
			row = r
			break
		}
	}
	return domain.Coords{Row: row, Column: i - offsets[row]}
}
