package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDataChanged      EventType = "DataChanged"
	EventPageChanged      EventType = "PageChanged"
	EventSortChanged      EventType = "SortChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventFilterChanged    EventType = "FilterChanged"
	EventError            EventType = "Error"
	EventLoadRequested    EventType = "LoadRequested"
	EventLoadStarted      EventType = "LoadStarted"
	EventDataLoaded       EventType = "DataLoaded"
	EventLoadFailed       EventType = "LoadFailed"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DataChangedEvent is emitted when the table's backing dataset is replaced
type DataChangedEvent struct {
	Data  []Row
	Count int
}

func (e DataChangedEvent) Type() EventType { return EventDataChanged }

// PageChangedEvent is emitted when the current page or page derivation changes
type PageChangedEvent struct {
	Page       int
	PageSize   int
	TotalPages int
	TotalRows  int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// SortChangedEvent is emitted when the sort field or direction changes
type SortChangedEvent struct {
	Field     string
	Direction SortDirection
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// SelectionChangedEvent is emitted when the set of selected rows changes
type SelectionChangedEvent struct {
	Selected []Row
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// FilterChangedEvent is emitted when the filter query changes
type FilterChangedEvent struct {
	Query   string
	Matched int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// LoadRequestedEvent is emitted to request loading a data file
type LoadRequestedEvent struct {
	Path string
}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when file ingestion begins
type LoadStartedEvent struct {
	Path string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// DataLoadedEvent is emitted when a data file has been read and decoded
type DataLoadedEvent struct {
	Path    string
	Rows    []Row
	Columns []Column // inferred when the config declares none
}

func (e DataLoadedEvent) Type() EventType { return EventDataLoaded }

// LoadFailedEvent is emitted when file ingestion fails
type LoadFailedEvent struct {
	Path string
	Err  error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	DataFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
