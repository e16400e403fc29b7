package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Focused       lipgloss.Style
	Picked        lipgloss.Style
	FocusedPicked lipgloss.Style
	Disabled      lipgloss.Style
	Cell          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Focused:       lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Picked:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		FocusedPicked: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("78")).Bold(true),
		Disabled:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Cell:          lipgloss.NewStyle().Width(6).Align(lipgloss.Center),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
