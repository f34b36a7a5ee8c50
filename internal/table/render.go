package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"

	"griddle/internal/domain"
)

// maxColumnWidth caps auto-sized columns so one long cell cannot push
// the rest of the table off screen.
const maxColumnWidth = 40

// Sort direction glyphs shown in sortable header cells.
const (
	glyphAsc      = "↑"
	glyphDesc     = "↓"
	glyphUnsorted = "↕"
)

// Regions is the complete structural output of a full render.
type Regions struct {
	Toolbar    string
	Header     string
	Body       string
	Info       string
	Pagination string
}

// RegionPatch carries the regions an incremental render replaces: the
// row body, the info line, the pagination block and the header sort
// marks. The toolbar is never patched, so host state anchored there
// survives high-frequency updates such as per-keystroke filtering.
type RegionPatch struct {
	Header     string
	Body       string
	Info       string
	Pagination string
}

// Sink receives rendered output. ApplyFull replaces the whole
// structure; ApplyPatch swaps only the named regions and leaves the
// rest in place.
type Sink interface {
	ApplyFull(r Regions)
	ApplyPatch(p RegionPatch)
}

// Renderer turns ViewState snapshots into region strings
type Renderer struct {
	styles         *Styles
	showRowNumbers bool
}

// NewRenderer creates a new renderer
func NewRenderer(showRowNumbers bool) *Renderer {
	return &Renderer{
		styles:         NewStyles(),
		showRowNumbers: showRowNumbers,
	}
}

// RenderFull produces every region.
func (r *Renderer) RenderFull(st ViewState) Regions {
	return Regions{
		Toolbar:    r.renderToolbar(st),
		Header:     r.renderHeader(st),
		Body:       r.renderBody(st),
		Info:       r.renderInfo(st),
		Pagination: r.renderPagination(st),
	}
}

// RenderPatch produces the incrementally replaceable regions.
func (r *Renderer) RenderPatch(st ViewState) RegionPatch {
	return RegionPatch{
		Header:     r.renderHeader(st),
		Body:       r.renderBody(st),
		Info:       r.renderInfo(st),
		Pagination: r.renderPagination(st),
	}
}

// renderToolbar builds the title line. Only state that cannot change
// between full renders belongs here.
func (r *Renderer) renderToolbar(st ViewState) string {
	title := r.styles.Title.Render("griddle")
	if st.RawCount == 0 {
		return title
	}
	return fmt.Sprintf("%s  %s", title, r.styles.Dim.Render(fmt.Sprintf("%d rows", st.RawCount)))
}

// renderHeader builds the header cells with sort glyphs.
func (r *Renderer) renderHeader(st ViewState) string {
	cells := make([]string, 0, len(st.Columns)+2)

	if st.Selectable {
		mark := "[ ]"
		if st.AllSelected {
			mark = "[x]"
		}
		cells = append(cells, r.styles.Header.Render(mark))
	}
	if r.showRowNumbers {
		cells = append(cells, r.styles.Header.Render(padLeft("#", numberWidth(st.RawCount))))
	}

	for i, col := range st.Columns {
		w := columnWidth(st, i, col)
		content := col.Title()
		if g := sortGlyph(st, col); g != "" {
			content = content + " " + g
		}
		cell := padRight(truncate(content, w), w)

		style := r.styles.Header
		if st.Sortable && st.SortField == col.Field {
			style = r.styles.HeaderSorted
		}
		if i == st.CursorCol {
			style = r.styles.ColumnCursor
		}
		cells = append(cells, style.Render(cell))
	}

	return strings.Join(cells, "  ")
}

// renderBody builds the visible rows, or the single full-width empty
// message row when the page has nothing to show.
func (r *Renderer) renderBody(st ViewState) string {
	if len(st.Rows) == 0 {
		return r.styles.Empty.Render(padRight(st.EmptyMessage, r.tableWidth(st)))
	}

	lines := make([]string, 0, len(st.Rows))
	for i, vr := range st.Rows {
		lines = append(lines, r.renderRow(st, i, vr))
	}
	return strings.Join(lines, "\n")
}

// renderRow builds one body line: selection mark, row number, cells.
func (r *Renderer) renderRow(st ViewState, rowIdx int, vr VisibleRow) string {
	cells := make([]string, 0, len(st.Columns)+2)

	if st.Selectable {
		mark := "[ ]"
		if vr.Selected {
			mark = "[x]"
		}
		cells = append(cells, mark)
	}
	if r.showRowNumbers {
		cells = append(cells, padLeft(strconv.Itoa(vr.GlobalIndex+1), numberWidth(st.RawCount)))
	}
	for i, col := range st.Columns {
		w := columnWidth(st, i, col)
		cells = append(cells, padRight(truncate(cellText(col, vr.Row), w), w))
	}

	line := strings.Join(cells, "  ")
	switch {
	case rowIdx == st.CursorRow:
		return r.styles.CursorBg.Render(line)
	case vr.Selected:
		return r.styles.Selected.Render(line)
	}
	return line
}

// renderInfo builds the summary line below the table.
func (r *Renderer) renderInfo(st ViewState) string {
	parts := []string{
		fmt.Sprintf("page %d/%d", st.Page, st.TotalPages),
		fmt.Sprintf("%d rows", st.TotalRows),
	}
	if st.FilterQuery != "" {
		parts = append(parts, fmt.Sprintf("filtered from %d", st.RawCount))
	}
	if st.SelectedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", st.SelectedCount))
	}

	info := r.styles.Info.Render(strings.Join(parts, " | "))
	if st.FilterQuery != "" {
		info = fmt.Sprintf("%s  %s", info, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", st.FilterQuery)))
	}
	return info
}

// renderPagination builds the page button strip. A single page needs
// no controls.
func (r *Renderer) renderPagination(st ViewState) string {
	if st.TotalPages <= 1 {
		return ""
	}

	prev := r.styles.Dim.Render("‹ prev")
	if st.Page > 1 {
		prev = r.styles.PageArrow.Render("‹ prev")
	}
	next := r.styles.Dim.Render("next ›")
	if st.Page < st.TotalPages {
		next = r.styles.PageArrow.Render("next ›")
	}

	nums := make([]string, 0, len(st.Buttons))
	for _, p := range st.Buttons {
		if p == st.Page {
			nums = append(nums, r.styles.PageCurrent.Render(fmt.Sprintf("[%d]", p)))
		} else {
			nums = append(nums, r.styles.PageNumber.Render(strconv.Itoa(p)))
		}
	}

	return fmt.Sprintf("%s  %s  %s", prev, strings.Join(nums, " "), next)
}

// tableWidth is the display width of a full body line.
func (r *Renderer) tableWidth(st ViewState) int {
	w := 0
	cells := 0
	if st.Selectable {
		w += 3
		cells++
	}
	if r.showRowNumbers {
		w += numberWidth(st.RawCount)
		cells++
	}
	for i, col := range st.Columns {
		w += columnWidth(st, i, col)
		cells++
	}
	if cells > 1 {
		w += 2 * (cells - 1)
	}
	return w
}

// sortGlyph returns the three-state sort marker for a header cell, or
// "" for columns that cannot be sorted.
func sortGlyph(st ViewState, col domain.Column) string {
	if !st.Sortable || !col.IsSortable() {
		return ""
	}
	if st.SortField == col.Field {
		if st.SortDir == domain.SortDesc {
			return glyphDesc
		}
		return glyphAsc
	}
	return glyphUnsorted
}

// cellText resolves the display text of one cell: the column's render
// hook when present, else the raw value with nil reading as "".
func cellText(col domain.Column, row domain.Row) string {
	if col.Render != nil {
		return col.Render(row[col.Field], row)
	}
	return cast.ToString(row[col.Field])
}

// resolveWidths sizes each column to its widest content, capped at
// maxColumnWidth. Explicit column widths win. Called only on full
// renders so incremental patches keep header and body aligned.
func resolveWidths(columns []domain.Column, rows []domain.Row) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		w := lipgloss.Width(col.Title()) + 2 // room for the sort glyph
		for _, row := range rows {
			if cw := lipgloss.Width(cellText(col, row)); cw > w {
				w = cw
			}
		}
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		widths[i] = w
	}
	return widths
}

// columnWidth reads the frozen width for a column, falling back to the
// title width before the first full render.
func columnWidth(st ViewState, i int, col domain.Column) int {
	if i < len(st.Widths) && st.Widths[i] > 0 {
		return st.Widths[i]
	}
	w := lipgloss.Width(col.Title()) + 2
	if col.Width > 0 {
		w = col.Width
	}
	return w
}

// numberWidth is the digit width of the largest row number.
func numberWidth(rawCount int) int {
	if rawCount < 1 {
		return 1
	}
	return len(strconv.Itoa(rawCount))
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// truncate shortens s to the display width w, marking the cut with an
// ellipsis.
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
