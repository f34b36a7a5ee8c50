package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"griddle/internal/table"
)

// regionBuffer keeps the latest rendered strings for each screen region.
// It is the table's render sink: full renders replace every region,
// patches replace only the volatile ones and leave the toolbar alone.
type regionBuffer struct {
	toolbar    string
	header     string
	body       string
	info       string
	pagination string
}

// ApplyFull implements table.Sink
func (b *regionBuffer) ApplyFull(r table.Regions) {
	b.toolbar = r.Toolbar
	b.header = r.Header
	b.body = r.Body
	b.info = r.Info
	b.pagination = r.Pagination
}

// ApplyPatch implements table.Sink
func (b *regionBuffer) ApplyPatch(p table.RegionPatch) {
	b.header = p.Header
	b.body = p.Body
	b.info = p.Info
	b.pagination = p.Pagination
}

// uiStyles covers the chrome around the table regions
type uiStyles struct {
	Main   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Dim    lipgloss.Style
	Filter lipgloss.Style
	Help   lipgloss.Style
}

func newUIStyles() *uiStyles {
	return &uiStyles{
		Main:   lipgloss.NewStyle().Padding(1, 2).MaxHeight(100),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}

// composeView assembles the final frame from the rendered regions and the
// surrounding chrome (filter box, status line, help bar).
func composeView(styles *uiStyles, b *regionBuffer, filterLine, statusLine, helpBar string, height int) string {
	content := &strings.Builder{}

	content.WriteString(b.toolbar)
	content.WriteString("\n")

	if filterLine != "" {
		content.WriteString(filterLine)
		content.WriteString("\n")
	}

	content.WriteString(b.header)
	content.WriteString("\n")
	content.WriteString(b.body)
	content.WriteString("\n")
	content.WriteString(b.info)

	if b.pagination != "" {
		content.WriteString("\n")
		content.WriteString(b.pagination)
	}

	if statusLine != "" {
		content.WriteString("\n")
		content.WriteString(statusLine)
	}

	// Pin the help bar to the bottom of the screen
	if helpBar != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := height - 2
		if availableLines <= 0 {
			availableLines = 22
		}

		paddingNeeded := availableLines - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		content.WriteString("\n")
		content.WriteString(helpBar)
	}

	mainStyle := styles.Main
	if height > 0 {
		mainStyle = mainStyle.MaxHeight(height)
	}
	return mainStyle.Render(content.String())
}
