package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCursorMoved        EventType = "CursorMoved"
	EventPlaneCursorMoved   EventType = "PlaneCursorMoved"
	EventPicksChanged       EventType = "PicksChanged"
	EventPlanePicksChanged  EventType = "PlanePicksChanged"
	EventCollectionChanged  EventType = "CollectionChanged"
	EventPlaneChanged       EventType = "PlaneChanged"
	EventEligibilityChanged EventType = "EligibilityChanged"
	EventHistoryRecorded    EventType = "HistoryRecorded"
	EventHistoryRestored    EventType = "HistoryRestored"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CursorMovedEvent is emitted when a list cursor changes location
type CursorMovedEvent struct {
	Old int
	New int
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// PlaneCursorMovedEvent is emitted when a plane cursor changes location
type PlaneCursorMovedEvent struct {
	Old Coords
	New Coords
}

func (e PlaneCursorMovedEvent) Type() EventType { return EventPlaneCursorMoved }

// PicksChangedEvent is emitted when a list pick set changes
type PicksChangedEvent struct {
	Added   []int
	Removed []int
	Total   int
}

func (e PicksChangedEvent) Type() EventType { return EventPicksChanged }

// PlanePicksChangedEvent is emitted when a plane pick set changes
type PlanePicksChangedEvent struct {
	Added   []Coords
	Removed []Coords
	Total   int
}

func (e PlanePicksChangedEvent) Type() EventType { return EventPlanePicksChanged }

// CollectionChangedEvent is emitted after a list identity sequence is replaced
type CollectionChangedEvent struct {
	Name     string
	Previous []string
	Current  []string
}

func (e CollectionChangedEvent) Type() EventType { return EventCollectionChanged }

// PlaneChangedEvent is emitted after a plane identity sequence is replaced
type PlaneChangedEvent struct {
	Name     string
	Previous [][]string
	Current  [][]string
}

func (e PlaneChangedEvent) Type() EventType { return EventPlaneChanged }

// EligibilityChangedEvent signals that previously computed eligibility is stale.
// Source distinguishes independent signals sharing one bus.
type EligibilityChangedEvent struct {
	Source string
}

func (e EligibilityChangedEvent) Type() EventType { return EventEligibilityChanged }

// HistoryRecordedEvent is emitted when a snapshot is recorded
type HistoryRecordedEvent struct {
	Size    int
	Pointer int
}

func (e HistoryRecordedEvent) Type() EventType { return EventHistoryRecorded }

// HistoryRestoredEvent is emitted after undo or redo restores a snapshot
type HistoryRestoredEvent struct {
	Pointer int
}

func (e HistoryRestoredEvent) Type() EventType { return EventHistoryRestored }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
