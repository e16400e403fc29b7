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

// GridOptions configures a grid widget
type GridOptions struct {
	Name            string
	Keys            [][]string
	Eligibility     eligibility.PlaneSource
	Loops           bool
	Multiselectable bool
	HistoryCapacity int
}

// GridState is a read-only view for rendering
type GridState struct {
	Keys     [][]string
	Location domain.Coords
	Picks    []domain.Coords
}

// Grid manages the engine of a grid widget
type Grid struct {
	Collection *collection.Plane
	Cursor     *navigation.PlaneCursor
	Picks      *selection.PlanePickSet
	History    *history.History[history.PlaneSnapshot]

	reconciler *reconcile.PlaneReconciler
	source     eligibility.PlaneSource
	bus        eventbus.EventBus
	lastChange domain.Change
	unsubs     []func()
}

// NewGrid creates a grid coordinator with all services
func NewGrid(bus eventbus.EventBus, opts GridOptions) *Grid {
	if bus == nil {
		bus = eventbus.New()
	}
	if opts.Name == "" {
		opts.Name = "grid"
	}
	source := opts.Eligibility
	if source == nil {
		source = eligibility.Static(domain.Enabled)
	}

	g := &Grid{
		Collection: collection.NewPlane(bus, opts.Name, opts.Keys),
		source:     source,
		bus:        bus,
	}
	g.Cursor = navigation.NewPlaneCursor(bus, g.Collection, source, opts.Loops)
	g.Picks = selection.NewPlanePickSet(bus, g.Collection, source, opts.Multiselectable, opts.Loops)
	g.History = history.New[history.PlaneSnapshot](bus, g, opts.HistoryCapacity)
	g.reconciler = reconcile.NewPlane(g.Cursor, g.Picks, source, g.Collection)

	g.unsubs = append(g.unsubs, g.Collection.Subscribe(func(previous, current [][]string) {
		g.lastChange = g.reconciler.Reconcile(previous, current)
	}))
	if n, ok := source.(eligibility.Notifier); ok {
		g.unsubs = append(g.unsubs, n.Subscribe(g.reconciler.Refresh))
	}

	return g
}

// SetKeys replaces the identity plane
func (g *Grid) SetKeys(keys [][]string) {
	g.Collection.Set(keys)
}

// LastChange returns the classification of the latest identity change
func (g *Grid) LastChange() domain.Change {
	return g.lastChange
}

// State returns a snapshot for rendering
func (g *Grid) State() GridState {
	return GridState{
		Keys:     g.Collection.Keys(),
		Location: g.Cursor.Location(),
		Picks:    g.Picks.Picks(),
	}
}

// Ability reports the current eligibility of cell
func (g *Grid) Ability(cell domain.Coords) domain.Ability {
	if !g.Collection.Contains(cell) {
		return domain.Disabled
	}
	return g.source.GetCell(cell)
}

// Snapshot implements history.Target
func (g *Grid) Snapshot() history.PlaneSnapshot {
	return history.PlaneSnapshot{
		Location: g.Cursor.Location(),
		Picks:    g.Picks.Picks(),
	}
}

// Restore implements history.Target
func (g *Grid) Restore(s history.PlaneSnapshot) {
	g.Cursor.Set(s.Location)
	g.Picks.Replace(s.Picks)
}

// Close detaches the coordinator from its bus and signals
func (g *Grid) Close() {
	for _, unsub := range g.unsubs {
		unsub()
	}
	g.unsubs = nil
}
