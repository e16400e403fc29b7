package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding of the demo
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Home       key.Binding
	End        key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Next       key.Binding
	Previous   key.Binding
	Toggle     key.Binding
	Range      key.Binding
	PickAll    key.Binding
	Clear      key.Binding
	Disable    key.Binding
	Shuffle    key.Binding
	Reverse    key.Binding
	Delete     key.Binding
	Restore    key.Binding
	Filter     key.Binding
	Undo       key.Binding
	Redo       key.Binding
	History    key.Binding
	SwitchMode key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Previous:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "previous")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick")),
		Range:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "pick range")),
		PickAll:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "pick all")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear picks")),
		Disable:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle disabled")),
		Shuffle:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Reverse:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		Delete:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "remove focused")),
		Restore:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "restore items")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Undo:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("C-r", "redo")),
		History:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history pager")),
		SwitchMode: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "list/grid")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Disable, k.Filter, k.Undo, k.SwitchMode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End, k.PageUp, k.PageDown, k.Next, k.Previous},
		{k.Toggle, k.Range, k.PickAll, k.Clear, k.Disable},
		{k.Shuffle, k.Reverse, k.Delete, k.Restore, k.Filter},
		{k.Undo, k.Redo, k.History, k.SwitchMode, k.Help, k.Quit},
	}
}
