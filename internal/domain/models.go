package domain

// None is the index reported when no eligible location exists.
const None = -1

// Ability describes whether a location can be navigated to or picked.
type Ability string

const (
	Enabled  Ability = "enabled"
	Disabled Ability = "disabled"
	// AbilityNone is returned by operations that found no eligible location
	AbilityNone Ability = "none"
)

// Coords identifies a cell in a plane
type Coords struct {
	Row    int
	Column int
}

// NoCoords is the plane equivalent of None
var NoCoords = Coords{Row: None, Column: None}

// IsNone reports whether c is the distinguished "no location" value
func (c Coords) IsNone() bool {
	return c.Row < 0 || c.Column < 0
}

// Change classifies a structural change to an identity sequence.
// Lengthened means keys appeared, Shortened means keys disappeared, so a
// replacement of one key by another at the same length reports both.
type Change struct {
	Lengthened bool
	Shortened  bool
	Reordered  bool
}

// IsNone reports whether the change is structurally a no-op
func (c Change) IsNone() bool {
	return !c.Lengthened && !c.Shortened && !c.Reordered
}

func (c Change) String() string {
	if c.IsNone() {
		return "none"
	}
	s := ""
	add := func(part string) {
		if s != "" {
			s += "+"
		}
		s += part
	}
	if c.Lengthened {
		add("lengthened")
	}
	if c.Shortened {
		add("shortened")
	}
	if c.Reordered {
		add("reordered")
	}
	return s
}
