package table

import (
	"sort"
	"strings"

	"griddle/internal/domain"
	"griddle/internal/eventbus"
	"griddle/internal/logutil"
)

// Table owns the raw dataset and every piece of view state derived from
// it: filter query, sort state, current page, selection and cursor.
// Rows flow raw → filtered → sorted → paged; the derived view is a list
// of global indices, so a row's identity never depends on where the
// current filter or sort happens to place it.
//
// All methods must be called from one goroutine. Every operation runs
// to completion, hands the rendered regions to the sink and publishes
// its events before returning.
type Table struct {
	bus  eventbus.EventBus
	cmp  *Comparator
	opts Options

	raw  []domain.Row
	view []int // global indices after filter+sort

	query     string
	sortField string
	sortDir   domain.SortDirection
	page      int

	sel      *Selection
	renderer *Renderer
	sink     Sink
	widths   []int

	cursorRow int // page-relative, -1 when hidden
	cursorCol int
}

// New creates a table with the given options and no data. A nil
// renderer gets a default one without row numbers.
func New(bus eventbus.EventBus, opts Options, renderer *Renderer) *Table {
	if renderer == nil {
		renderer = NewRenderer(false)
	}
	return &Table{
		bus:       bus,
		cmp:       NewComparator(),
		opts:      opts.normalized(),
		view:      []int{},
		sortDir:   domain.SortAsc,
		page:      1,
		sel:       NewSelection(),
		renderer:  renderer,
		cursorRow: -1,
		cursorCol: -1,
	}
}

// SetSink attaches the render sink and performs the initial full
// render.
func (t *Table) SetSink(sink Sink) {
	t.sink = sink
	t.renderFull()
}

// ApplyOptions replaces the configuration and performs a full render.
// The host calls this on any config change; zero values fill in with
// defaults. Data, filter, sort and selection are kept, the page is
// re-clamped against the new page size.
func (t *Table) ApplyOptions(opts Options) {
	t.opts = opts.normalized()
	t.derive()
	t.page = t.window().page
	t.clampCursor()
	t.renderFull()
}

// Options returns the active configuration.
func (t *Table) Options() Options {
	return t.opts
}

// SetData replaces the dataset wholesale: page back to 1, selection
// cleared, filter reseeded, the current sort re-applied to the new
// rows. Selection never survives a data replacement.
func (t *Table) SetData(rows []domain.Row) {
	if rows == nil {
		rows = []domain.Row{}
	}
	t.raw = rows
	t.query = ""
	t.page = 1
	t.sel.Clear()
	t.derive()
	t.clampCursor()
	t.renderFull()

	logutil.Infof("table: dataset replaced, %d rows", len(t.raw))
	t.publish(eventbus.DataChangedEvent{Data: t.Data(), Count: len(t.raw)})
}

// SortBy sorts by field. An explicit direction always wins; with
// SortNone a repeated sort of the same field toggles direction and a
// new field starts ascending. Page and selection are left alone.
func (t *Table) SortBy(field string, direction domain.SortDirection) {
	if field == "" {
		return
	}

	dir := direction
	if dir == domain.SortNone {
		if t.sortField == field && t.sortDir == domain.SortAsc {
			dir = domain.SortDesc
		} else {
			dir = domain.SortAsc
		}
	}

	if t.sortField == field && t.sortDir == dir {
		// Explicit direction matching the current state changes nothing.
		t.renderPatch()
		return
	}

	t.sortField = field
	t.sortDir = dir
	t.derive()
	t.renderPatch()

	logutil.Debugf("table: sorted by %s %s", field, dir)
	t.publish(eventbus.SortChangedEvent{Field: field, Direction: dir})
}

// Filter applies a substring query across the filterable columns. The
// page resets to 1; the selection is untouched. Correct to call on
// every keystroke.
func (t *Table) Filter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == t.query {
		t.renderPatch()
		return
	}

	prevPage := t.page
	t.query = query
	t.page = 1
	t.derive()
	t.clampCursor()
	t.renderPatch()

	logutil.Debugf("table: filter %q matched %d of %d", query, len(t.view), len(t.raw))
	t.publish(eventbus.FilterChangedEvent{Query: query, Matched: len(t.view)})
	if prevPage != 1 {
		t.publish(t.pageEvent())
	}
}

// FilterQuery returns the normalized active query.
func (t *Table) FilterQuery() string {
	return t.query
}

// GoToPage navigates to page n, clamped into the valid range. Out of
// range requests never error.
func (t *Table) GoToPage(n int) {
	pw := derivePage(len(t.view), t.opts.PageSize, n)
	changed := pw.page != t.page
	t.page = pw.page
	t.clampCursor()
	t.renderPatch()

	if changed {
		t.publish(t.pageEvent())
	}
}

// NextPage advances one page.
func (t *Table) NextPage() {
	t.GoToPage(t.page + 1)
}

// PrevPage goes back one page.
func (t *Table) PrevPage() {
	t.GoToPage(t.page - 1)
}

// ToggleRow sets the selection state of the row at a page-relative
// index. The index resolves through the current page window to the
// row's global index, so the selection survives later filter, sort and
// page changes.
func (t *Table) ToggleRow(pageRelative int, selected bool) {
	g, ok := t.globalIndex(pageRelative)
	if !ok {
		return
	}
	if t.sel.Contains(g) == selected {
		t.renderPatch()
		return
	}

	t.sel.Set(g, selected)
	t.renderPatch()
	t.publish(eventbus.SelectionChangedEvent{Selected: t.SelectedRows()})
}

// ToggleAllOnPage selects or clears every row visible on the current
// page. Rows on other pages and rows hidden by the filter stay as they
// are.
func (t *Table) ToggleAllOnPage(selected bool) {
	pw := t.window()
	changed := false
	for vi := pw.start; vi < pw.end; vi++ {
		g := t.view[vi]
		if t.sel.Contains(g) != selected {
			t.sel.Set(g, selected)
			changed = true
		}
	}
	t.renderPatch()

	if changed {
		t.publish(eventbus.SelectionChangedEvent{Selected: t.SelectedRows()})
	}
}

// ClearSelection empties the selection set.
func (t *Table) ClearSelection() {
	if t.sel.Count() == 0 {
		return
	}
	t.sel.Clear()
	t.renderPatch()
	t.publish(eventbus.SelectionChangedEvent{Selected: []domain.Row{}})
}

// SetCursor moves the host cursor: row is page-relative, col indexes
// the columns. Values clamp into range; -1 hides that cursor.
func (t *Table) SetCursor(row, col int) {
	pw := t.window()
	visible := pw.end - pw.start
	if row >= visible {
		row = visible - 1
	}
	if row < -1 {
		row = -1
	}
	if col >= len(t.opts.Columns) {
		col = len(t.opts.Columns) - 1
	}
	if col < -1 {
		col = -1
	}

	t.cursorRow, t.cursorCol = row, col
	t.renderPatch()
}

// Cursor returns the clamped cursor position.
func (t *Table) Cursor() (row, col int) {
	return t.cursorRow, t.cursorCol
}

// Data returns a defensive copy of the raw dataset.
func (t *Table) Data() []domain.Row {
	out := make([]domain.Row, len(t.raw))
	copy(out, t.raw)
	return out
}

// Columns returns a copy of the active column schema.
func (t *Table) Columns() []domain.Column {
	out := make([]domain.Column, len(t.opts.Columns))
	copy(out, t.opts.Columns)
	return out
}

// SortState returns the current sort field and direction. An empty
// field means load order.
func (t *Table) SortState() domain.SortState {
	return domain.SortState{Field: t.sortField, Direction: t.sortDir}
}

// PageInfo returns the derived pagination read model. TotalRows counts
// the filtered view, not the raw dataset.
func (t *Table) PageInfo() domain.PageInfo {
	pw := t.window()
	return domain.PageInfo{
		Page:       pw.page,
		PageSize:   t.opts.PageSize,
		TotalPages: pw.totalPages,
		TotalRows:  len(t.view),
	}
}

// SelectedRows resolves the selection against the raw data, ascending
// by global index.
func (t *Table) SelectedRows() []domain.Row {
	idx := t.sel.Indices()
	out := make([]domain.Row, 0, len(idx))
	for _, g := range idx {
		if g < len(t.raw) {
			out = append(out, t.raw[g])
		}
	}
	return out
}

// SelectedCount returns the number of selected rows.
func (t *Table) SelectedCount() int {
	return t.sel.Count()
}

// VisibleRows returns the rows of the current page with selection state
// resolved at call time.
func (t *Table) VisibleRows() []VisibleRow {
	pw := t.window()
	out := make([]VisibleRow, 0, pw.end-pw.start)
	for vi := pw.start; vi < pw.end; vi++ {
		g := t.view[vi]
		out = append(out, VisibleRow{Row: t.raw[g], GlobalIndex: g, Selected: t.sel.Contains(g)})
	}
	return out
}

// AllOnPageSelected reports whether the page is non-empty and every
// visible row on it is selected. A partial selection reads as false,
// there is no indeterminate state.
func (t *Table) AllOnPageSelected() bool {
	pw := t.window()
	if pw.end == pw.start {
		return false
	}
	for vi := pw.start; vi < pw.end; vi++ {
		if !t.sel.Contains(t.view[vi]) {
			return false
		}
	}
	return true
}

// Redraw forces a full render of the current state.
func (t *Table) Redraw() {
	t.renderFull()
}

// derive recomputes the view from scratch: filter in raw order, then
// sort. Ties keep raw order.
func (t *Table) derive() {
	t.view = applyFilter(t.raw, t.query, t.opts.Columns)
	if t.sortField == "" {
		return
	}
	field, dir := t.sortField, t.sortDir
	sort.SliceStable(t.view, func(i, j int) bool {
		return t.cmp.CompareField(t.raw[t.view[i]], t.raw[t.view[j]], field, dir) < 0
	})
}

// window derives the current page slice against the filtered count.
func (t *Table) window() pageWindow {
	return derivePage(len(t.view), t.opts.PageSize, t.page)
}

// globalIndex resolves a page-relative index through the page window:
// view position (page-1)*pageSize+pageRelative, then the global index
// stored there.
func (t *Table) globalIndex(pageRelative int) (int, bool) {
	if pageRelative < 0 {
		return 0, false
	}
	pw := t.window()
	vi := pw.start + pageRelative
	if vi >= pw.end {
		return 0, false
	}
	return t.view[vi], true
}

// clampCursor keeps the cursor inside the visible page after the view
// shrinks or moves.
func (t *Table) clampCursor() {
	pw := t.window()
	visible := pw.end - pw.start
	if t.cursorRow >= visible {
		t.cursorRow = visible - 1
	}
	if t.cursorCol >= len(t.opts.Columns) {
		t.cursorCol = len(t.opts.Columns) - 1
	}
}

// viewState snapshots everything the renderer needs.
func (t *Table) viewState() ViewState {
	pw := t.window()
	return ViewState{
		Columns:       t.opts.Columns,
		Widths:        t.widths,
		Rows:          t.VisibleRows(),
		SortField:     t.sortField,
		SortDir:       t.sortDir,
		Page:          pw.page,
		PageSize:      t.opts.PageSize,
		TotalPages:    pw.totalPages,
		TotalRows:     len(t.view),
		RawCount:      len(t.raw),
		FilterQuery:   t.query,
		Buttons:       pageButtons(pw.page, pw.totalPages),
		Sortable:      t.opts.Sortable,
		Selectable:    t.opts.Selectable,
		Filterable:    t.opts.Filterable,
		EmptyMessage:  t.opts.EmptyMessage,
		AllSelected:   t.AllOnPageSelected(),
		SelectedCount: t.sel.Count(),
		CursorRow:     t.cursorRow,
		CursorCol:     t.cursorCol,
	}
}

// renderFull recomputes column widths and replaces every region.
func (t *Table) renderFull() {
	if t.sink == nil {
		return
	}
	t.widths = resolveWidths(t.opts.Columns, t.raw)
	t.sink.ApplyFull(t.renderer.RenderFull(t.viewState()))
}

// renderPatch swaps body, info, pagination and header sort marks,
// keeping the toolbar and the frozen column widths.
func (t *Table) renderPatch() {
	if t.sink == nil {
		return
	}
	if t.widths == nil {
		t.renderFull()
		return
	}
	t.sink.ApplyPatch(t.renderer.RenderPatch(t.viewState()))
}

// pageEvent snapshots the page read model for publishing.
func (t *Table) pageEvent() eventbus.PageChangedEvent {
	pi := t.PageInfo()
	return eventbus.PageChangedEvent{
		Page:       pi.Page,
		PageSize:   pi.PageSize,
		TotalPages: pi.TotalPages,
		TotalRows:  pi.TotalRows,
	}
}

func (t *Table) publish(e eventbus.DomainEvent) {
	if t.bus != nil {
		t.bus.Publish(e)
	}
}
