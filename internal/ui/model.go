package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"griddle/internal/config"
	"griddle/internal/domain"
	"griddle/internal/eventbus"
	"griddle/internal/logutil"
	"griddle/internal/table"
)

// inputMode selects where keystrokes go
type inputMode int

const (
	modeNormal inputMode = iota
	modeFilter
)

// Model is the top-level Bubble Tea model hosting a table
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	table  *table.Table

	keys        KeyMap
	help        help.Model
	filterInput textinput.Model
	mode        inputMode
	prevQuery   string // query to restore when the filter edit is cancelled

	regions regionBuffer
	styles  *uiStyles

	width  int
	height int

	dataPath    string
	loading     bool
	status      string
	statusIsErr bool
	inPagerMode bool

	pager   *PagerOps
	program *tea.Program
}

// NewModel creates the UI model and the table it hosts
func NewModel(cfg *config.Config, bus eventbus.EventBus, dataPath string) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter rows"
	ti.CharLimit = 128

	m := &Model{
		bus:         bus,
		config:      cfg,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		filterInput: ti,
		styles:      newUIStyles(),
		dataPath:    dataPath,
		pager:       NewPagerOps(),
	}

	m.table = table.New(bus, optionsFromConfig(cfg), table.NewRenderer(cfg.UI.ShowRowNumbers))
	m.table.SetSink(&m.regions)
	return m
}

// optionsFromConfig maps persisted table settings onto table options
func optionsFromConfig(cfg *config.Config) table.Options {
	return table.Options{
		Columns:      cfg.Table.Columns,
		PageSize:     cfg.Table.PageSize,
		Sortable:     cfg.Table.Sortable,
		Selectable:   cfg.Table.Selectable,
		Filterable:   cfg.Table.Filterable,
		EmptyMessage: cfg.Table.EmptyMessage,
	}
}

// SetProgram sets the program reference for pager terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Table exposes the hosted table
func (m *Model) Table() *table.Table {
	return m.table
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeFilter {
			return m.updateFilterMode(msg)
		}
		return m.updateNormalMode(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tickMsg:
		// Don't continue the tick loop while a pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case rowDetailPagerMsg:
		if msg.err != nil {
			logutil.Errorf("row detail pager failed: %v", msg.err)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			logutil.Errorf("help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tick()

	case clearStatusMsg:
		m.status = ""
		m.statusIsErr = false
		return m, nil
	}

	return m, nil
}

// updateNormalMode routes keys to table operations
func (m *Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.RowDown):
		row, col := m.table.Cursor()
		m.table.SetCursor(row+1, col)

	case key.Matches(msg, m.keys.RowUp):
		row, col := m.table.Cursor()
		if row > 0 {
			m.table.SetCursor(row-1, col)
		}

	case key.Matches(msg, m.keys.ColRight):
		row, col := m.table.Cursor()
		m.table.SetCursor(row, col+1)

	case key.Matches(msg, m.keys.ColLeft):
		row, col := m.table.Cursor()
		if col > 0 {
			m.table.SetCursor(row, col-1)
		}

	case key.Matches(msg, m.keys.Sort):
		if !m.config.Table.Sortable {
			return m, nil
		}
		cols := m.table.Columns()
		_, col := m.table.Cursor()
		if col < 0 || col >= len(cols) {
			return m, m.flashStatus("move the column cursor first (h/l)")
		}
		if !cols[col].IsSortable() {
			return m, m.flashStatus(fmt.Sprintf("column %q is not sortable", cols[col].Title()))
		}
		m.table.SortBy(cols[col].Field, domain.SortNone)

	case key.Matches(msg, m.keys.NextPage):
		m.table.NextPage()

	case key.Matches(msg, m.keys.PrevPage):
		m.table.PrevPage()

	case key.Matches(msg, m.keys.FirstPage):
		m.table.GoToPage(1)

	case key.Matches(msg, m.keys.LastPage):
		m.table.GoToPage(m.table.PageInfo().TotalPages)

	case key.Matches(msg, m.keys.ToggleRow):
		if !m.config.Table.Selectable {
			return m, nil
		}
		row, _ := m.table.Cursor()
		rows := m.table.VisibleRows()
		if row < 0 || row >= len(rows) {
			return m, nil
		}
		m.table.ToggleRow(row, !rows[row].Selected)

	case key.Matches(msg, m.keys.TogglePage):
		if !m.config.Table.Selectable {
			return m, nil
		}
		m.table.ToggleAllOnPage(!m.table.AllOnPageSelected())

	case key.Matches(msg, m.keys.ClearSel):
		m.table.ClearSelection()

	case key.Matches(msg, m.keys.Filter):
		if !m.config.Table.Filterable {
			return m, nil
		}
		m.mode = modeFilter
		m.prevQuery = m.table.FilterQuery()
		m.filterInput.SetValue(m.prevQuery)
		m.filterInput.CursorEnd()
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.RowDetail):
		row, _ := m.table.Cursor()
		rows := m.table.VisibleRows()
		if row < 0 || row >= len(rows) {
			return m, m.flashStatus("move the row cursor first (j/k)")
		}
		content := rowDetailContent(rows[row].Row, m.table.Columns(), rows[row].GlobalIndex+1)
		return m, m.runRowDetailPager(content)

	case key.Matches(msg, m.keys.Reload):
		if m.dataPath == "" {
			return m, m.flashStatus("no data file to reload")
		}
		m.bus.Publish(eventbus.LoadRequestedEvent{Path: m.dataPath})

	case key.Matches(msg, m.keys.Help):
		return m, m.runHelpPager()
	}

	return m, nil
}

// updateFilterMode feeds keystrokes into the filter box and applies the
// query live on every edit
func (m *Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		// Abandon the edit, restore the query active before '/'
		m.table.Filter(m.prevQuery)
		m.exitFilterMode()
		return m, nil

	case tea.KeyEnter:
		m.exitFilterMode()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.table.Filter(m.filterInput.Value())
	return m, cmd
}

func (m *Model) exitFilterMode() {
	m.mode = modeNormal
	m.filterInput.Blur()
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := event.(type) {
	case eventbus.LoadStartedEvent:
		m.loading = true
		return m, nil

	case eventbus.DataLoadedEvent:
		m.loading = false
		// A schema from the config file wins; otherwise the columns
		// inferred from the file apply on every load.
		if len(m.config.Table.Columns) == 0 && len(ev.Columns) > 0 {
			opts := m.table.Options()
			opts.Columns = ev.Columns
			m.table.ApplyOptions(opts)
		}
		m.table.SetData(ev.Rows)
		return m, m.flashStatus(fmt.Sprintf("loaded %d rows from %s", len(ev.Rows), ev.Path))

	case eventbus.LoadFailedEvent:
		m.loading = false
		m.status = fmt.Sprintf("load failed: %v", ev.Err)
		m.statusIsErr = true
		return m, nil

	case eventbus.ErrorEvent:
		m.status = ev.Message
		m.statusIsErr = true
		return m, nil
	}

	return m, nil
}

// flashStatus shows a transient status line for a few seconds
func (m *Model) flashStatus(text string) tea.Cmd {
	m.status = text
	m.statusIsErr = false
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// runRowDetailPager returns a command that pages one row's fields
func (m *Model) runRowDetailPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return rowDetailPagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowRowDetail(content)
		m.program.Send(resumeRenderingMsg{})
		return rowDetailPagerMsg{err: err}
	}
}

// runHelpPager returns a command that shows the full help in the pager
func (m *Model) runHelpPager() tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowHelp(helpContent())
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	filterLine := ""
	if m.mode == modeFilter {
		filterLine = m.filterInput.View()
	}

	statusLine := ""
	switch {
	case m.loading:
		frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(frames)
		statusLine = m.styles.Dim.Render(fmt.Sprintf("%s Loading %s", frames[frame], m.dataPath))
	case m.statusIsErr:
		statusLine = m.styles.Error.Render(m.status)
	case m.status != "":
		statusLine = m.styles.Status.Render(m.status)
	}

	return composeView(m.styles, &m.regions, filterLine, statusLine, m.help.View(m.keys), m.height)
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
