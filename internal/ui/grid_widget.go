package ui

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"eligible/internal/config"
	"eligible/internal/coordinator"
	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/eventbus"
	"eligible/internal/navigation"
)

// gridWidget is a grid assembled on the plane engine. Removing a cell
// leaves its row shorter, so rows are ragged after deletions.
type gridWidget struct {
	engine   *coordinator.Grid
	order    [][]string
	removed  map[string]bool
	disabled map[string]bool
	trigger  *eligibility.Trigger
}

// cellKey labels cells like a spreadsheet: rows A..Z, AA, AB, ... and
// columns from 1, so every cell of any grid size gets its own key.
func cellKey(row, column int) string {
	return fmt.Sprintf("%s%d", rowLabel(row), column+1)
}

func rowLabel(row int) string {
	var label []byte
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte('A' + (n-1)%26)}, label...)
	}
	return string(label)
}

func newGridWidget(bus eventbus.EventBus, cfg *config.Config) *gridWidget {
	w := &gridWidget{
		removed:  make(map[string]bool),
		disabled: make(map[string]bool),
		trigger:  eligibility.NewTrigger(bus, "grid-disabled"),
	}
	for r := 0; r < cfg.Grid.Rows; r++ {
		row := make([]string, cfg.Grid.Columns)
		for c := range row {
			row[c] = cellKey(r, c)
		}
		w.order = append(w.order, row)
	}
	for _, cell := range cfg.Grid.DisabledCells() {
		w.disabled[cellKey(cell.Row, cell.Column)] = true
	}

	source := eligibility.ReactivePlane(func(c domain.Coords) domain.Ability {
		if w.disabled[w.engine.Collection.Key(c)] {
			return domain.Disabled
		}
		return domain.Enabled
	}, w.trigger)

	w.engine = coordinator.NewGrid(bus, coordinator.GridOptions{
		Name:            "grid",
		Keys:            w.visibleKeys(),
		Eligibility:     source,
		Loops:           cfg.Grid.Loops,
		Multiselectable: cfg.Grid.Multiselectable,
		HistoryCapacity: cfg.History.Capacity,
	})
	w.engine.Cursor.First()
	w.engine.History.Record()

	return w
}

func (w *gridWidget) visibleKeys() [][]string {
	keys := make([][]string, 0, len(w.order))
	for _, row := range w.order {
		visible := make([]string, 0, len(row))
		for _, key := range row {
			if !w.removed[key] {
				visible = append(visible, key)
			}
		}
		keys = append(keys, visible)
	}
	return keys
}

func (w *gridWidget) sync() {
	w.engine.SetKeys(w.visibleKeys())
}

func (w *gridWidget) record(ability domain.Ability) domain.Ability {
	if ability == domain.Enabled {
		w.engine.History.Record()
	}
	return ability
}

func (w *gridWidget) navigate(direction navigation.Direction) domain.Ability {
	return w.record(w.engine.Cursor.Navigate(direction))
}

func (w *gridWidget) togglePick() domain.Ability {
	location := w.engine.Cursor.Location()
	if location.IsNone() {
		return domain.AbilityNone
	}
	return w.record(w.engine.Picks.Toggle(location))
}

func (w *gridWidget) pickRange() domain.Ability {
	location := w.engine.Cursor.Location()
	if location.IsNone() {
		return domain.AbilityNone
	}
	from := w.engine.Picks.Newest()
	if from.IsNone() {
		from = location
	}
	return w.record(w.engine.Picks.Range(from, location))
}

func (w *gridWidget) pickAll() domain.Ability {
	return w.record(w.engine.Picks.All())
}

func (w *gridWidget) clearPicks() {
	if w.engine.Picks.Len() == 0 {
		return
	}
	w.engine.Picks.Clear()
	w.engine.History.Record()
}

func (w *gridWidget) toggleDisabled() string {
	key := w.engine.Collection.Key(w.engine.Cursor.Location())
	if key == "" {
		return ""
	}
	w.disabled[key] = !w.disabled[key]
	w.trigger.Fire()
	w.engine.History.Record()
	if w.disabled[key] {
		return fmt.Sprintf("Disabled %s", key)
	}
	return fmt.Sprintf("Enabled %s", key)
}

// shuffle reorders whole rows
func (w *gridWidget) shuffle() {
	rand.Shuffle(len(w.order), func(i, j int) {
		w.order[i], w.order[j] = w.order[j], w.order[i]
	})
	w.sync()
}

func (w *gridWidget) reverse() {
	slices.Reverse(w.order)
	w.sync()
}

func (w *gridWidget) removeFocused() string {
	key := w.engine.Collection.Key(w.engine.Cursor.Location())
	if key == "" {
		return ""
	}
	w.removed[key] = true
	w.sync()
	return fmt.Sprintf("Removed %s", key)
}

func (w *gridWidget) restoreRemoved() {
	w.removed = make(map[string]bool)
	w.sync()
}

func (w *gridWidget) undo() error {
	return w.engine.History.Undo()
}

func (w *gridWidget) redo() error {
	return w.engine.History.Redo()
}

func (w *gridWidget) historyContent() string {
	var b strings.Builder
	pointer := w.engine.History.Pointer()
	for i, snapshot := range w.engine.History.Entries() {
		marker := "  "
		if i == pointer {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s#%-3d focus=(%d,%d) picks=%v\n", marker, i, snapshot.Location.Row, snapshot.Location.Column, snapshot.Picks)
	}
	return b.String()
}
