package domain

// Row represents a single record of the loaded dataset. Values are
// whatever the source file carried; a declared column is not guaranteed
// to be present on every row.
type Row map[string]any

// SortDirection is the order applied to a sorted column.
type SortDirection string

// Sort directions. The empty string means "not specified" and lets the
// table pick (toggle on repeated sorts of the same field).
const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Column describes how one field of a Row is presented
type Column struct {
	Field      string `json:"field" toml:"field"`
	Label      string `json:"label,omitempty" toml:"label,omitempty"`
	Sortable   *bool  `json:"sortable,omitempty" toml:"sortable,omitempty"`     // nil means sortable
	Filterable *bool  `json:"filterable,omitempty" toml:"filterable,omitempty"` // nil means filterable
	Width      int    `json:"width,omitempty" toml:"width,omitempty"`           // 0 means size to content

	// Render overrides the default cell formatting. Only settable from
	// code, never from a schema file.
	Render func(value any, row Row) string `json:"-" toml:"-"`
}

// Title returns the header text for the column.
func (c Column) Title() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Field
}

// IsSortable reports whether the column participates in sorting.
func (c Column) IsSortable() bool {
	return c.Sortable == nil || *c.Sortable
}

// IsFilterable reports whether the column participates in filtering.
func (c Column) IsFilterable() bool {
	return c.Filterable == nil || *c.Filterable
}

// SortState represents the current sort of the table. A zero Field
// means the dataset keeps its load order.
type SortState struct {
	Field     string
	Direction SortDirection
}

// PageInfo represents the current pagination state
type PageInfo struct {
	Page       int
	PageSize   int
	TotalPages int
	TotalRows  int // rows after filtering, not the raw dataset size
}
