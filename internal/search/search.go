// Package search finds the nearest eligible location in a direction.
package search

import (
	"eligible/internal/domain"
	"eligible/internal/eligibility"
)

// Direction is the walking direction of a search
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// Find walks from start one step at a time over [0, length) and returns the
// first enabled index, or domain.None. start itself is not checked until a
// looping walk comes back around to it, so -1 and length are valid starts.
// A walk never visits more than length locations.
func Find(start, length int, direction Direction, loops bool, ability func(int) domain.Ability) int {
	if length <= 0 {
		return domain.None
	}

	if start < -1 {
		start = -1
	}
	if start > length {
		start = length
	}

	step := 1
	if direction == Backward {
		step = -1
	}

	i := start
	for visited := 0; visited < length; visited++ {
		i += step
		if i < 0 || i >= length {
			if !loops {
				return domain.None
			}
			if i < 0 {
				i = length - 1
			} else {
				i = 0
			}
		}
		if eligibility.IsEnabled(ability(i)) {
			return i
		}
	}

	return domain.None
}

// FindIn is Find over a list eligibility source
func FindIn(start, length int, direction Direction, loops bool, source eligibility.Source) int {
	return Find(start, length, direction, loops, source.Get)
}
