package navigation

import "eligible/internal/domain"

// State holds all navigation-related state of a list cursor
type State struct {
	Location int
	Loops    bool
	PageSize int
}

// PlaneState holds all navigation-related state of a plane cursor
type PlaneState struct {
	Location domain.Coords
	Loops    bool
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
	DirectionFirst    Direction = "first"
	DirectionLast     Direction = "last"
)

// Bounds reports the length of a list
type Bounds interface {
	Len() int
}

// BoundsFunc adapts a function to Bounds
type BoundsFunc func() int

func (f BoundsFunc) Len() int { return f() }
