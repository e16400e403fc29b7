package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eligible/internal/domain"
	"eligible/internal/eligibility"
)

// only enables exactly the given indices
func only(indices ...int) func(int) domain.Ability {
	enabled := make(map[int]bool, len(indices))
	for _, i := range indices {
		enabled[i] = true
	}
	return func(i int) domain.Ability {
		if enabled[i] {
			return domain.Enabled
		}
		return domain.Disabled
	}
}

// except disables exactly the given indices
func except(indices ...int) func(int) domain.Ability {
	enabled := only(indices...)
	return func(i int) domain.Ability {
		if enabled(i) == domain.Enabled {
			return domain.Disabled
		}
		return domain.Enabled
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		length    int
		direction Direction
		loops     bool
		ability   func(int) domain.Ability
		want      int
	}{
		{"first skips leading disabled", -1, 10, Forward, false, except(0, 1), 2},
		{"last skips trailing disabled", 10, 10, Backward, false, except(8, 9), 7},
		{"next wraps to the only enabled", 7, 10, Forward, true, only(4), 4},
		{"previous finds the only enabled", 5, 10, Backward, true, only(4), 4},
		{"next without looping stops at the edge", 7, 10, Forward, false, only(4), domain.None},
		{"start is not checked first", 3, 10, Forward, false, only(3, 6), 6},
		{"looping visits start last", 3, 5, Forward, true, only(3), 3},
		{"looping over all disabled", 0, 5, Forward, true, only(), domain.None},
		{"empty collection", -1, 0, Forward, true, only(0), domain.None},
		{"start below range is clamped", -5, 3, Forward, false, only(0, 1, 2), 0},
		{"start above range is clamped", 99, 3, Backward, false, only(0, 1, 2), 2},
		{"unknown ability counts as disabled", -1, 3, Forward, false, func(i int) domain.Ability {
			if i == 2 {
				return domain.Enabled
			}
			return domain.Ability("hidden")
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.start, tt.length, tt.direction, tt.loops, tt.ability)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindInUsesSource(t *testing.T) {
	source := eligibility.Lookup(only(2, 5))

	assert.Equal(t, 2, FindIn(-1, 10, Forward, false, source))
	assert.Equal(t, 5, FindIn(2, 10, Forward, false, source))
	assert.Equal(t, 0, FindIn(-1, 10, Forward, false, eligibility.Static(domain.Enabled)))
	assert.Equal(t, domain.None, FindIn(-1, 10, Forward, true, eligibility.Static(domain.Disabled)))
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, Backward, Forward.Opposite())
	assert.Equal(t, Forward, Backward.Opposite())
}
