// Package history records cursor and pick snapshots so they can be replayed
// by undo and redo.
package history

import (
	"errors"

	"eligible/internal/domain"
	"eligible/internal/eventbus"
)

var (
	// ErrNothingToUndo indicates the pointer is already at the oldest snapshot.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the pointer is already at the newest snapshot.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultCapacity is used when a non-positive capacity is given
const DefaultCapacity = 100

// Snapshot is the recorded state of a list widget
type Snapshot struct {
	Location int
	Picks    []int
}

// PlaneSnapshot is the recorded state of a grid widget
type PlaneSnapshot struct {
	Location domain.Coords
	Picks    []domain.Coords
}

// Target captures and restores widget state. Restore bypasses eligibility:
// a snapshot is trusted to have been valid when it was recorded.
type Target[S any] interface {
	Snapshot() S
	Restore(S)
}

// History is a bounded list of snapshots with an undo pointer
type History[S any] struct {
	target   Target[S]
	bus      eventbus.EventBus
	entries  []S
	pointer  int
	capacity int
}

// New creates an empty history for target
func New[S any](bus eventbus.EventBus, target Target[S], capacity int) *History[S] {
	if bus == nil {
		bus = &eventbus.NullBus{}
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History[S]{
		target:   target,
		bus:      bus,
		pointer:  -1,
		capacity: capacity,
	}
}

// Record captures the target's current state. Snapshots newer than the
// pointer are discarded, and the oldest one is evicted at capacity.
func (h *History[S]) Record() {
	h.entries = append(h.entries[:h.pointer+1], h.target.Snapshot())
	if len(h.entries) > h.capacity {
		h.entries = h.entries[len(h.entries)-h.capacity:]
	}
	h.pointer = len(h.entries) - 1

	h.bus.Publish(domain.HistoryRecordedEvent{
		Size:    len(h.entries),
		Pointer: h.pointer,
	})
}

// Undo restores the snapshot before the pointer
func (h *History[S]) Undo() error {
	if h.pointer <= 0 {
		return ErrNothingToUndo
	}
	h.pointer--
	h.restore()
	return nil
}

// Redo restores the snapshot after the pointer
func (h *History[S]) Redo() error {
	if h.pointer >= len(h.entries)-1 {
		return ErrNothingToRedo
	}
	h.pointer++
	h.restore()
	return nil
}

// CanUndo reports whether Undo would succeed
func (h *History[S]) CanUndo() bool {
	return h.pointer > 0
}

// CanRedo reports whether Redo would succeed
func (h *History[S]) CanRedo() bool {
	return h.pointer < len(h.entries)-1
}

// Entries returns the recorded snapshots, oldest first
func (h *History[S]) Entries() []S {
	out := make([]S, len(h.entries))
	copy(out, h.entries)
	return out
}

// Pointer returns the index of the current snapshot, or -1 when empty
func (h *History[S]) Pointer() int {
	return h.pointer
}

func (h *History[S]) restore() {
	h.target.Restore(h.entries[h.pointer])
	h.bus.Publish(domain.HistoryRestoredEvent{Pointer: h.pointer})
}
