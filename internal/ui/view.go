package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eligible/internal/domain"
)

// View renders the UI
func (m *Model) View() string {
	if m.paused {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("eligible"))
	b.WriteString("\n")

	if m.mode == ModeList {
		b.WriteString(m.renderList())
	} else {
		b.WriteString(m.renderGrid())
	}

	if m.filtering || m.list.filter != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Filter.Render("Filter: "))
		if m.filtering {
			b.WriteString(m.filter.View())
		} else {
			b.WriteString(m.list.filter)
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.Main.Render(b.String())
}

func (m *Model) renderList() string {
	state := m.list.engine.State()
	if len(state.Keys) == 0 {
		return m.styles.Dim.Render("(no items)")
	}

	picked := make(map[int]bool, len(state.Picks))
	for _, p := range state.Picks {
		picked[p] = true
	}

	var lines []string
	start, end := m.list.viewport.Bounds(len(state.Keys))
	if start > 0 {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		marker := "[ ]"
		if picked[i] {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, state.Keys[i])

		enabled := m.list.engine.Ability(i) == domain.Enabled
		switch {
		case !enabled:
			line = m.styles.Disabled.Render(line)
		case i == state.Location && picked[i]:
			line = m.styles.FocusedPicked.Render(line)
		case i == state.Location:
			line = m.styles.Focused.Render(line)
		case picked[i]:
			line = m.styles.Picked.Render(line)
		}
		if i == state.Location {
			line = "> " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if end < len(state.Keys) {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", len(state.Keys)-end)))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderGrid() string {
	state := m.grid.engine.State()
	if len(state.Keys) == 0 {
		return m.styles.Dim.Render("(no cells)")
	}

	picked := make(map[domain.Coords]bool, len(state.Picks))
	for _, p := range state.Picks {
		picked[p] = true
	}

	rows := make([]string, 0, len(state.Keys))
	for r, row := range state.Keys {
		cells := make([]string, 0, len(row))
		for c, key := range row {
			cell := domain.Coords{Row: r, Column: c}
			style := m.styles.Cell
			switch {
			case m.grid.engine.Ability(cell) != domain.Enabled:
				style = style.Inherit(m.styles.Disabled)
			case cell == state.Location && picked[cell]:
				style = style.Inherit(m.styles.FocusedPicked)
			case cell == state.Location:
				style = style.Inherit(m.styles.Focused)
			case picked[cell]:
				style = style.Inherit(m.styles.Picked)
			}
			cells = append(cells, style.Render(key))
		}
		if len(cells) == 0 {
			rows = append(rows, m.styles.Dim.Render("(empty row)"))
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderStatus() string {
	var summary string
	if m.mode == ModeList {
		state := m.list.engine.State()
		summary = fmt.Sprintf("list  focus=%d  picks=%d  items=%d", state.Location, len(state.Picks), len(state.Keys))
	} else {
		state := m.grid.engine.State()
		summary = fmt.Sprintf("grid  focus=(%d,%d)  picks=%d  rows=%d", state.Location.Row, state.Location.Column, len(state.Picks), len(state.Keys))
	}

	line := m.styles.Status.Render(summary)
	if m.status != "" {
		style := m.styles.StatusSuccess
		if m.statusErr {
			style = m.styles.StatusError
		}
		line += "  " + style.Render(m.status)
	}
	return line
}
