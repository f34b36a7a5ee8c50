package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the table UI
type KeyMap struct {
	RowUp      key.Binding
	RowDown    key.Binding
	ColLeft    key.Binding
	ColRight   key.Binding
	Sort       key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	ToggleRow  key.Binding
	TogglePage key.Binding
	ClearSel   key.Binding
	Filter     key.Binding
	RowDetail  key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RowUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "row up"),
		),
		RowDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "row down"),
		),
		ColLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "column left"),
		),
		ColRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "column right"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "sort by column"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "prev page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "last page"),
		),
		ToggleRow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle row"),
		),
		TogglePage: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle page rows"),
		),
		ClearSel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		RowDetail: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "row detail"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload file"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the bottom help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort, k.Filter, k.ToggleRow, k.NextPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RowUp, k.RowDown, k.ColLeft, k.ColRight},
		{k.Sort, k.Filter, k.ToggleRow, k.TogglePage, k.ClearSel},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage},
		{k.RowDetail, k.Reload, k.Help, k.Quit},
	}
}
