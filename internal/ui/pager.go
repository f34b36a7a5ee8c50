package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
	"github.com/spf13/cast"

	"griddle/internal/domain"
)

// PagerOps runs full-screen ov sessions on top of the running program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowRowDetail pages the full field list of a single row
func (p *PagerOps) ShowRowDetail(content string) error {
	return p.runPager(content)
}

// ShowHelp pages the full help text
func (p *PagerOps) ShowHelp(content string) error {
	return p.runPager(content)
}

// runPager releases the terminal, runs ov over the content and restores it
func (p *PagerOps) runPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// rowDetailContent renders one row as a field-per-line document for the pager
func rowDetailContent(row domain.Row, columns []domain.Column, rowNumber int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)
	fieldStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	labelWidth := 0
	for _, col := range columns {
		if w := len(col.Title()); w > labelWidth {
			labelWidth = w
		}
	}
	for field := range row {
		if len(field) > labelWidth {
			labelWidth = len(field)
		}
	}

	var detail strings.Builder
	detail.WriteString(titleStyle.Render(fmt.Sprintf("Row %d", rowNumber)))
	detail.WriteString("\n")

	// Schema fields first, in column order
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		seen[col.Field] = true
		label := fmt.Sprintf("%-*s", labelWidth, col.Title())
		detail.WriteString(fmt.Sprintf("  %s  %s\n", fieldStyle.Render(label), valueStyle.Render(cast.ToString(row[col.Field]))))
	}

	// Remaining fields not covered by the schema
	extras := make([]string, 0)
	for field := range row {
		if !seen[field] {
			extras = append(extras, field)
		}
	}
	sort.Strings(extras)
	for _, field := range extras {
		label := fmt.Sprintf("%-*s", labelWidth, field)
		detail.WriteString(fmt.Sprintf("  %s  %s\n", fieldStyle.Render(label), valueStyle.Render(cast.ToString(row[field]))))
	}

	return detail.String()
}

// helpContent renders the full help document for the pager
func helpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Griddle Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move row cursor")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Move column cursor")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("n/p"), descStyle.Render("Next/previous page (also PgDn/PgUp)")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("g/G"), descStyle.Render("First/last page")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Sorting & Filtering"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("s/Enter"), descStyle.Render("Sort by highlighted column (repeat to reverse)")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("/"), descStyle.Render("Filter rows as you type")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Esc"), descStyle.Render("Cancel filter input (restores previous query)")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Space"), descStyle.Render("Toggle row selection")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("a"), descStyle.Render("Toggle all rows on this page")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear selection")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("i"), descStyle.Render("Show row detail")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("r"), descStyle.Render("Reload the data file")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s         %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
