// Package coordinator assembles the engine for one widget: identity
// sequence, eligibility, cursor, pick set, reconciler and history, wired
// together over a synchronous event bus.
package coordinator

import (
	"eligible/internal/collection"
	"eligible/internal/domain"
	"eligible/internal/eligibility"
	"eligible/internal/eventbus"
	"eligible/internal/history"
	"eligible/internal/navigation"
	"eligible/internal/reconcile"
	"eligible/internal/selection"
)

// ListOptions configures a list widget
type ListOptions struct {
	Name            string
	Keys            []string
	Eligibility     eligibility.Source
	Loops           bool
	Multiselectable bool
	HistoryCapacity int
}

// ListState is a read-only view for rendering
type ListState struct {
	Keys     []string
	Location int
	Picks    []int
}

// List manages the engine of a list widget (listbox, menu, tablist)
type List struct {
	Collection *collection.Sequence
	Cursor     *navigation.Cursor
	Picks      *selection.PickSet
	History    *history.History[history.Snapshot]

	reconciler *reconcile.Reconciler
	source     eligibility.Source
	bus        eventbus.EventBus
	lastChange domain.Change
	unsubs     []func()
}

// NewList creates a list coordinator with all services
func NewList(bus eventbus.EventBus, opts ListOptions) *List {
	if bus == nil {
		bus = eventbus.New()
	}
	if opts.Name == "" {
		opts.Name = "list"
	}
	source := opts.Eligibility
	if source == nil {
		source = eligibility.Static(domain.Enabled)
	}

	l := &List{
		Collection: collection.NewSequence(bus, opts.Name, opts.Keys),
		source:     source,
		bus:        bus,
	}
	l.Cursor = navigation.NewCursor(bus, l.Collection, source, opts.Loops)
	l.Picks = selection.NewPickSet(bus, l.Collection, source, opts.Multiselectable, opts.Loops)
	l.History = history.New[history.Snapshot](bus, l, opts.HistoryCapacity)
	l.reconciler = reconcile.New(l.Cursor, l.Picks, source, l.Collection)

	l.subscribeToEvents()

	return l
}

// subscribeToEvents sets up event handlers
func (l *List) subscribeToEvents() {
	// Reconciliation runs inside Collection.Set, before the caller can
	// navigate against the new keys.
	l.unsubs = append(l.unsubs, l.Collection.Subscribe(func(previous, current []string) {
		l.lastChange = l.reconciler.Reconcile(previous, current)
	}))

	if n, ok := l.source.(eligibility.Notifier); ok {
		l.unsubs = append(l.unsubs, n.Subscribe(l.reconciler.Refresh))
	}
}

// SetKeys replaces the identity sequence
func (l *List) SetKeys(keys []string) {
	l.Collection.Set(keys)
}

// LastChange returns the classification of the latest identity change
func (l *List) LastChange() domain.Change {
	return l.lastChange
}

// State returns a snapshot for rendering
func (l *List) State() ListState {
	return ListState{
		Keys:     l.Collection.Keys(),
		Location: l.Cursor.Location(),
		Picks:    l.Picks.Picks(),
	}
}

// Ability reports the current eligibility of index
func (l *List) Ability(index int) domain.Ability {
	if index < 0 || index >= l.Collection.Len() {
		return domain.Disabled
	}
	return l.source.Get(index)
}

// Snapshot implements history.Target
func (l *List) Snapshot() history.Snapshot {
	return history.Snapshot{
		Location: l.Cursor.Location(),
		Picks:    l.Picks.Picks(),
	}
}

// Restore implements history.Target
func (l *List) Restore(s history.Snapshot) {
	l.Cursor.Set(s.Location)
	l.Picks.Replace(s.Picks)
}

// Close detaches the coordinator from its bus and signals
func (l *List) Close() {
	for _, unsub := range l.unsubs {
		unsub()
	}
	l.unsubs = nil
}
