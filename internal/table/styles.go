package table

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for table output
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	HeaderSorted lipgloss.Style
	ColumnCursor lipgloss.Style
	Selected     lipgloss.Style
	CursorBg     lipgloss.Style
	Dim          lipgloss.Style
	Info         lipgloss.Style
	Filter       lipgloss.Style
	Empty        lipgloss.Style
	PageCurrent  lipgloss.Style
	PageNumber   lipgloss.Style
	PageArrow    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Header: lipgloss.NewStyle().Bold(true),
		HeaderSorted: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")),
		ColumnCursor: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("238")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		CursorBg:    lipgloss.NewStyle().Background(lipgloss.Color("238")), // gray
		Dim:         lipgloss.NewStyle().Faint(true),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Empty:       lipgloss.NewStyle().Faint(true).Italic(true),
		PageCurrent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		PageNumber:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PageArrow:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
	}
}
