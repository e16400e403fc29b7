package ui

// viewport tracks the visible window of the list
type viewport struct {
	Offset int
	Height int
}

func newViewport() viewport {
	return viewport{Height: 20} // Default, will be updated
}

// SetTerminalHeight updates the height, reserving space for header, status bar and help
func (v *viewport) SetTerminalHeight(height int) {
	effectiveHeight := height - 10
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	v.Height = effectiveHeight
}

// EnsureVisible scrolls so that cursor is inside the window
func (v *viewport) EnsureVisible(cursor, total int) {
	if cursor >= 0 {
		if cursor < v.Offset {
			v.Offset = cursor
		} else if cursor >= v.Offset+v.Height {
			v.Offset = cursor - v.Height + 1
		}
	}

	maxOffset := total - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// Bounds returns the half-open index range to render
func (v *viewport) Bounds(total int) (int, int) {
	end := v.Offset + v.Height
	if end > total {
		end = total
	}
	return v.Offset, end
}
