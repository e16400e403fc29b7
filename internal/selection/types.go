package selection

import "eligible/internal/domain"

// State holds the picks of a list, oldest first
type State struct {
	Picks           []int
	Multiselectable bool
	Loops           bool
}

// PlaneState holds the picks of a plane, oldest first
type PlaneState struct {
	Picks           []domain.Coords
	Multiselectable bool
	Loops           bool
}

// Bounds reports the length of a list
type Bounds interface {
	Len() int
}
