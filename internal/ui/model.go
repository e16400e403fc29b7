package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"eligible/internal/config"
	"eligible/internal/domain"
	"eligible/internal/eventbus"
	"eligible/internal/history"
	"eligible/internal/navigation"
)

// Mode selects which widget receives input
type Mode int

const (
	ModeList Mode = iota
	ModeGrid
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	keys   keyMap
	help   help.Model
	styles *Styles
	filter textinput.Model
	pager  *PagerOps

	list *listWidget
	grid *gridWidget
	mode Mode

	filtering bool
	paused    bool
	width     int
	height    int
	status    string
	statusErr bool
	program   *tea.Program
}

// NewModel creates the demo model
func NewModel(cfg *config.Config, bus eventbus.EventBus) *Model {
	if bus == nil {
		bus = eventbus.New()
	}

	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "" // Prompt is handled in the view
	ti.CharLimit = 64

	m := &Model{
		bus:    bus,
		config: cfg,
		keys:   newKeyMap(),
		help:   help.New(),
		styles: NewStyles(),
		filter: ti,
		pager:  NewPagerOps(nil),
		list:   newListWidget(bus, cfg),
		grid:   newGridWidget(bus, cfg),
	}
	if cfg.UI.StartInGrid {
		m.mode = ModeGrid
	}

	bus.Subscribe(eventbus.EventCollectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.CollectionChangedEvent); ok {
			log.Printf("Collection %s: %d -> %d items", event.Name, len(event.Previous), len(event.Current))
		}
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Mode returns the widget receiving input
func (m *Model) Mode() Mode {
	return m.mode
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.viewport.SetTerminalHeight(msg.Height)
		m.list.viewport.EnsureVisible(m.list.engine.Cursor.Location(), m.list.engine.Collection.Len())
		return m, nil

	case pauseRenderingMsg:
		m.paused = true
		return m, nil

	case resumeRenderingMsg:
		m.paused = false
		return m, nil

	case historyPagerMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("History pager failed: %v", msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.Reset()
		m.list.setFilter("")
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.list.setFilter(m.filter.Value())
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.SwitchMode):
		if m.mode == ModeList {
			m.mode = ModeGrid
		} else {
			m.mode = ModeList
		}
	case key.Matches(msg, m.keys.Filter):
		if m.mode != ModeList {
			m.setError("Filtering is only available in the list")
			break
		}
		m.filtering = true
		m.filter.SetValue(m.list.filter)
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.History):
		return m, m.showHistoryPager()
	case key.Matches(msg, m.keys.Undo):
		m.report(m.undo())
	case key.Matches(msg, m.keys.Redo):
		m.report(m.redo())
	default:
		if m.mode == ModeList {
			m.handleListKey(msg)
		} else {
			m.handleGridKey(msg)
		}
	}

	return m, nil
}

// directionFor maps navigation bindings to engine directions
func (m *Model) directionFor(msg tea.KeyMsg) (navigation.Direction, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return navigation.DirectionUp, true
	case key.Matches(msg, m.keys.Down):
		return navigation.DirectionDown, true
	case key.Matches(msg, m.keys.Left):
		return navigation.DirectionLeft, true
	case key.Matches(msg, m.keys.Right):
		return navigation.DirectionRight, true
	case key.Matches(msg, m.keys.Home):
		return navigation.DirectionHome, true
	case key.Matches(msg, m.keys.End):
		return navigation.DirectionEnd, true
	case key.Matches(msg, m.keys.PageUp):
		return navigation.DirectionPageUp, true
	case key.Matches(msg, m.keys.PageDown):
		return navigation.DirectionPageDown, true
	case key.Matches(msg, m.keys.Next):
		return navigation.DirectionNext, true
	case key.Matches(msg, m.keys.Previous):
		return navigation.DirectionPrevious, true
	}
	return "", false
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	if direction, ok := m.directionFor(msg); ok {
		if m.list.navigate(direction) == domain.AbilityNone {
			m.status = "No eligible item in that direction"
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.checkAbility(m.list.togglePick())
	case key.Matches(msg, m.keys.Range):
		m.checkAbility(m.list.pickRange())
	case key.Matches(msg, m.keys.PickAll):
		m.checkAbility(m.list.pickAll())
	case key.Matches(msg, m.keys.Clear):
		m.list.clearPicks()
	case key.Matches(msg, m.keys.Disable):
		m.setSuccess(m.list.toggleDisabled())
	case key.Matches(msg, m.keys.Shuffle):
		m.list.shuffle()
		m.setSuccess("Shuffled: " + m.list.engine.LastChange().String())
	case key.Matches(msg, m.keys.Reverse):
		m.list.reverse()
		m.setSuccess("Reversed: " + m.list.engine.LastChange().String())
	case key.Matches(msg, m.keys.Delete):
		m.setSuccess(m.list.removeFocused())
	case key.Matches(msg, m.keys.Restore):
		m.list.restoreRemoved()
		m.setSuccess("Restored: " + m.list.engine.LastChange().String())
	}
}

func (m *Model) handleGridKey(msg tea.KeyMsg) {
	if direction, ok := m.directionFor(msg); ok {
		if m.grid.navigate(direction) == domain.AbilityNone {
			m.status = "No eligible cell in that direction"
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.checkAbility(m.grid.togglePick())
	case key.Matches(msg, m.keys.Range):
		m.checkAbility(m.grid.pickRange())
	case key.Matches(msg, m.keys.PickAll):
		m.checkAbility(m.grid.pickAll())
	case key.Matches(msg, m.keys.Clear):
		m.grid.clearPicks()
	case key.Matches(msg, m.keys.Disable):
		m.setSuccess(m.grid.toggleDisabled())
	case key.Matches(msg, m.keys.Shuffle):
		m.grid.shuffle()
		m.setSuccess("Shuffled rows: " + m.grid.engine.LastChange().String())
	case key.Matches(msg, m.keys.Reverse):
		m.grid.reverse()
		m.setSuccess("Reversed rows: " + m.grid.engine.LastChange().String())
	case key.Matches(msg, m.keys.Delete):
		m.setSuccess(m.grid.removeFocused())
	case key.Matches(msg, m.keys.Restore):
		m.grid.restoreRemoved()
		m.setSuccess("Restored: " + m.grid.engine.LastChange().String())
	}
}

func (m *Model) undo() error {
	if m.mode == ModeList {
		return m.list.undo()
	}
	return m.grid.undo()
}

func (m *Model) redo() error {
	if m.mode == ModeList {
		return m.list.redo()
	}
	return m.grid.redo()
}

func (m *Model) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, history.ErrNothingToUndo), errors.Is(err, history.ErrNothingToRedo):
		m.status = err.Error()
	default:
		m.setError(err.Error())
	}
}

func (m *Model) checkAbility(ability domain.Ability) {
	if ability == domain.AbilityNone {
		m.status = "Nothing eligible to pick"
	}
}

func (m *Model) setError(status string) {
	m.status = status
	m.statusErr = true
}

func (m *Model) setSuccess(status string) {
	m.status = status
	m.statusErr = false
}

// showHistoryPager returns a command that shows recorded snapshots using ov pager
func (m *Model) showHistoryPager() tea.Cmd {
	content := m.list.historyContent()
	if m.mode == ModeGrid {
		content = m.grid.historyContent()
	}
	return func() tea.Msg {
		if m.program == nil {
			return historyPagerMsg{err: ErrNoProgram}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return historyPagerMsg{err: err}
	}
}
