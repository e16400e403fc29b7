// Package eligibility reports whether a location may be navigated to or picked.
//
// A source is one of three forms: a constant (Static), a caller supplied
// lookup recomputed on every query (Lookup, PlaneLookup), or a lookup paired
// with change signals (Reactive, ReactivePlane). Only reactive sources tell
// their owner when previously computed answers went stale.
package eligibility

import (
	"sync"

	"eligible/internal/domain"
)

// Source reports the ability of a list location
type Source interface {
	Get(index int) domain.Ability
}

// PlaneSource reports the ability of a plane location
type PlaneSource interface {
	GetCell(c domain.Coords) domain.Ability
}

// Signal notifies subscribers that something eligibility depends on changed
type Signal interface {
	Subscribe(fn func()) func()
}

// Notifier is implemented by sources that announce staleness
type Notifier interface {
	Subscribe(fn func()) func()
}

// Invalidator is implemented by sources that cache computed abilities
type Invalidator interface {
	Invalidate()
}

// Static reports the same ability for every location
type Static domain.Ability

func (s Static) Get(index int) domain.Ability { return domain.Ability(s) }
func (s Static) GetCell(c domain.Coords) domain.Ability { return domain.Ability(s) }

// Lookup adapts a function to Source
type Lookup func(index int) domain.Ability

func (f Lookup) Get(index int) domain.Ability { return f(index) }

// PlaneLookup adapts a function to PlaneSource
type PlaneLookup func(c domain.Coords) domain.Ability

func (f PlaneLookup) GetCell(c domain.Coords) domain.Ability { return f(c) }

// IsEnabled treats anything other than Enabled as disabled
func IsEnabled(a domain.Ability) bool {
	return a == domain.Enabled
}

type subscriber struct {
	id uint64
	fn func()
}

// watcher is the shared change-notification half of the reactive sources
type watcher struct {
	subMu       sync.Mutex
	subscribers []subscriber
	nextID      uint64
	unsubs      []func()
	onStale     func()
}

func (w *watcher) watch(signals []Signal) {
	for _, s := range signals {
		w.unsubs = append(w.unsubs, s.Subscribe(w.notify))
	}
}

func (w *watcher) notify() {
	if w.onStale != nil {
		w.onStale()
	}

	w.subMu.Lock()
	subs := make([]subscriber, len(w.subscribers))
	copy(subs, w.subscribers)
	w.subMu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}

// Subscribe registers fn to run whenever any of the source's signals fire.
// The cache is already invalidated when fn runs.
func (w *watcher) Subscribe(fn func()) func() {
	w.subMu.Lock()
	defer w.subMu.Unlock()
	w.nextID++
	id := w.nextID
	w.subscribers = append(w.subscribers, subscriber{id: id, fn: fn})
	return func() {
		w.subMu.Lock()
		defer w.subMu.Unlock()
		for i, s := range w.subscribers {
			if s.id == id {
				w.subscribers = append(w.subscribers[:i:i], w.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Close detaches the source from its signals
func (w *watcher) Close() {
	for _, unsub := range w.unsubs {
		unsub()
	}
	w.unsubs = nil
}

// ReactiveSource is a lookup whose results are cached until a signal fires
type ReactiveSource struct {
	watcher
	get   func(index int) domain.Ability
	mu    sync.Mutex
	cache map[int]domain.Ability
}

// Reactive creates a list source that goes stale whenever any signal fires
func Reactive(get func(index int) domain.Ability, signals ...Signal) *ReactiveSource {
	r := &ReactiveSource{
		get:   get,
		cache: make(map[int]domain.Ability),
	}
	r.onStale = r.Invalidate
	r.watch(signals)
	return r
}

func (r *ReactiveSource) Get(index int) domain.Ability {
	r.mu.Lock()
	if a, ok := r.cache[index]; ok {
		r.mu.Unlock()
		return a
	}
	r.mu.Unlock()

	a := r.get(index)

	r.mu.Lock()
	r.cache[index] = a
	r.mu.Unlock()
	return a
}

// Invalidate discards every cached ability
func (r *ReactiveSource) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[int]domain.Ability)
	r.mu.Unlock()
}

// ReactivePlaneSource is the plane counterpart of ReactiveSource
type ReactivePlaneSource struct {
	watcher
	get   func(c domain.Coords) domain.Ability
	mu    sync.Mutex
	cache map[domain.Coords]domain.Ability
}

// ReactivePlane creates a plane source that goes stale whenever any signal fires
func ReactivePlane(get func(c domain.Coords) domain.Ability, signals ...Signal) *ReactivePlaneSource {
	r := &ReactivePlaneSource{
		get:   get,
		cache: make(map[domain.Coords]domain.Ability),
	}
	r.onStale = r.Invalidate
	r.watch(signals)
	return r
}

func (r *ReactivePlaneSource) GetCell(c domain.Coords) domain.Ability {
	r.mu.Lock()
	if a, ok := r.cache[c]; ok {
		r.mu.Unlock()
		return a
	}
	r.mu.Unlock()

	a := r.get(c)

	r.mu.Lock()
	r.cache[c] = a
	r.mu.Unlock()
	return a
}

// Invalidate discards every cached ability
func (r *ReactivePlaneSource) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[domain.Coords]domain.Ability)
	r.mu.Unlock()
}
