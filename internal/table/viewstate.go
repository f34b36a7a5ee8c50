package table

import "griddle/internal/domain"

// VisibleRow is one row of the current page paired with its identity
// and selection state.
type VisibleRow struct {
	Row         domain.Row
	GlobalIndex int // position in the raw dataset
	Selected    bool
}

// ViewState contains all the state needed for rendering. It is a pure
// snapshot recomputed after every mutation; the renderer never reaches
// back into the table.
type ViewState struct {
	Columns       []domain.Column
	Widths        []int // one per column, frozen at the last full render
	Rows          []VisibleRow
	SortField     string
	SortDir       domain.SortDirection
	Page          int
	PageSize      int
	TotalPages    int
	TotalRows     int // rows after filtering
	RawCount      int
	FilterQuery   string
	Buttons       []int
	Sortable      bool
	Selectable    bool
	Filterable    bool
	EmptyMessage  string
	AllSelected   bool // page non-empty and every visible row selected
	SelectedCount int
	CursorRow     int // page-relative, -1 when none
	CursorCol     int // index into Columns, -1 when none
}
