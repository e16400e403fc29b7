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

// listWidget is a listbox assembled on the engine. Filtering, removing and
// shuffling all go through the identity sequence so the reconciler keeps
// focus and picks on the same items.
type listWidget struct {
	engine   *coordinator.List
	order    []string
	removed  map[string]bool
	disabled map[string]bool
	trigger  *eligibility.Trigger
	filter   string
	viewport viewport
}

func newListWidget(bus eventbus.EventBus, cfg *config.Config) *listWidget {
	w := &listWidget{
		order:    slices.Clone(cfg.List.Items),
		removed:  make(map[string]bool),
		disabled: make(map[string]bool),
		trigger:  eligibility.NewTrigger(bus, "list-disabled"),
		viewport: newViewport(),
	}
	for _, key := range cfg.List.Disabled {
		w.disabled[key] = true
	}

	source := eligibility.Reactive(func(index int) domain.Ability {
		if w.disabled[w.engine.Collection.Key(index)] {
			return domain.Disabled
		}
		return domain.Enabled
	}, w.trigger)

	w.engine = coordinator.NewList(bus, coordinator.ListOptions{
		Name:            "listbox",
		Keys:            w.visibleKeys(),
		Eligibility:     source,
		Loops:           cfg.List.Loops,
		Multiselectable: cfg.List.Multiselectable,
		HistoryCapacity: cfg.History.Capacity,
	})
	w.engine.Cursor.SetPageSize(cfg.UI.PageSize)
	w.engine.Cursor.First()
	w.engine.History.Record()

	return w
}

func (w *listWidget) visibleKeys() []string {
	query := strings.ToLower(w.filter)
	keys := make([]string, 0, len(w.order))
	for _, key := range w.order {
		if w.removed[key] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(key), query) {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func (w *listWidget) sync() {
	w.engine.SetKeys(w.visibleKeys())
	w.viewport.EnsureVisible(w.engine.Cursor.Location(), w.engine.Collection.Len())
}

// record snapshots state after a successful interaction
func (w *listWidget) record(ability domain.Ability) domain.Ability {
	if ability == domain.Enabled {
		w.engine.History.Record()
	}
	w.viewport.EnsureVisible(w.engine.Cursor.Location(), w.engine.Collection.Len())
	return ability
}

func (w *listWidget) navigate(direction navigation.Direction) domain.Ability {
	return w.record(w.engine.Cursor.Navigate(direction))
}

func (w *listWidget) togglePick() domain.Ability {
	location := w.engine.Cursor.Location()
	if location == domain.None {
		return domain.AbilityNone
	}
	return w.record(w.engine.Picks.Toggle(location))
}

func (w *listWidget) pickRange() domain.Ability {
	location := w.engine.Cursor.Location()
	if location == domain.None {
		return domain.AbilityNone
	}
	from := w.engine.Picks.Newest()
	if from == domain.None {
		from = location
	}
	return w.record(w.engine.Picks.Range(from, location))
}

func (w *listWidget) pickAll() domain.Ability {
	return w.record(w.engine.Picks.All())
}

func (w *listWidget) clearPicks() {
	if w.engine.Picks.Len() == 0 {
		return
	}
	w.engine.Picks.Clear()
	w.engine.History.Record()
}

func (w *listWidget) toggleDisabled() string {
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

func (w *listWidget) shuffle() {
	rand.Shuffle(len(w.order), func(i, j int) {
		w.order[i], w.order[j] = w.order[j], w.order[i]
	})
	w.sync()
}

func (w *listWidget) reverse() {
	slices.Reverse(w.order)
	w.sync()
}

func (w *listWidget) removeFocused() string {
	key := w.engine.Collection.Key(w.engine.Cursor.Location())
	if key == "" {
		return ""
	}
	w.removed[key] = true
	w.sync()
	return fmt.Sprintf("Removed %s", key)
}

func (w *listWidget) restoreRemoved() {
	w.removed = make(map[string]bool)
	w.sync()
}

func (w *listWidget) setFilter(query string) {
	if query == w.filter {
		return
	}
	w.filter = query
	w.sync()
}

func (w *listWidget) undo() error {
	err := w.engine.History.Undo()
	w.viewport.EnsureVisible(w.engine.Cursor.Location(), w.engine.Collection.Len())
	return err
}

func (w *listWidget) redo() error {
	err := w.engine.History.Redo()
	w.viewport.EnsureVisible(w.engine.Cursor.Location(), w.engine.Collection.Len())
	return err
}

// historyContent renders the recorded snapshots for the pager
func (w *listWidget) historyContent() string {
	var b strings.Builder
	pointer := w.engine.History.Pointer()
	for i, snapshot := range w.engine.History.Entries() {
		marker := "  "
		if i == pointer {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s#%-3d focus=%-3d picks=%v\n", marker, i, snapshot.Location, snapshot.Picks)
	}
	return b.String()
}
