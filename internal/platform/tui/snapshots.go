package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Snapshot browser layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show variant sidebar
	sidebarWidth       = 22  // Width of variant sidebar
	maxSnapshots       = 200 // Max snapshots to load per variant
)

// SnapshotKeyMap defines the key bindings for the snapshot browser.
type SnapshotKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Delete      key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SnapshotKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Delete, k.NextVariant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SnapshotKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Open, k.Delete, k.Back, k.Quit},
	}
}

// DefaultSnapshotKeyMap returns default key bindings.
func DefaultSnapshotKeyMap() SnapshotKeyMap {
	return SnapshotKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next world"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev world"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SnapshotsModel is the Bubble Tea model for the snapshot browser.
type SnapshotsModel struct {
	variants      []registry.VariantInfo
	variantCursor int
	store         *storage.Store
	snapshots     []storage.Snapshot
	table         table.Model
	help          help.Model
	keys          SnapshotKeyMap
	width         int
	height        int
	err           error
	quitting      bool
	goingBack     bool
	selected      string // Name of the snapshot to open
	showSidebar   bool
}

// NewSnapshotsModel creates a new snapshot browser.
func NewSnapshotsModel(store *storage.Store, width, height int) SnapshotsModel {
	m := SnapshotsModel{
		variants:    registry.List(),
		store:       store,
		keys:        DefaultSnapshotKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.variants) > 0 {
		m.loadSnapshots(m.variants[0].ID)
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *SnapshotsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Gen", Width: 7},
		{Title: "Pop", Width: 7},
		{Title: "Rule", Width: 14},
		{Title: "Saved", Width: 13},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Name absorbs the slack or the shortfall.
	fixed := 7 + 7 + 14 + 13 + 2*len(columns)
	columns[0].Width = min(max(tableWidth-fixed, 12), 40)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSnapshots loads the listing for the given variant.
func (m *SnapshotsModel) loadSnapshots(variantID string) {
	m.err = nil
	if m.store == nil {
		m.snapshots = nil
		m.updateTableRows()
		return
	}

	snaps, err := m.store.ListSnapshots(variantID, maxSnapshots)
	if err != nil {
		m.err = err
		m.snapshots = nil
	} else {
		m.snapshots = snaps
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current listing.
func (m *SnapshotsModel) updateTableRows() {
	rows := make([]table.Row, len(m.snapshots))
	for i, s := range m.snapshots {
		rows[i] = table.Row{
			s.Name,
			fmt.Sprintf("%d", s.Generation),
			fmt.Sprintf("%d", s.Population),
			s.Rule,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *SnapshotsModel) currentVariant() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.variantCursor].ID
}

// Init initializes the snapshot browser.
func (m SnapshotsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the snapshot browser.
func (m SnapshotsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if i := m.table.Cursor(); i >= 0 && i < len(m.snapshots) {
				m.selected = m.snapshots[i].Name
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if i := m.table.Cursor(); i >= 0 && i < len(m.snapshots) && m.store != nil {
				if _, err := m.store.DeleteSnapshot(m.snapshots[i].Name); err != nil {
					m.err = err
					return m, nil
				}
				m.loadSnapshots(m.currentVariant())
			}
			return m, nil

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.variants) > 0 {
				m.variantCursor = (m.variantCursor + 1) % len(m.variants)
				m.loadSnapshots(m.currentVariant())
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.variants) > 0 {
				m.variantCursor = (m.variantCursor - 1 + len(m.variants)) % len(m.variants)
				m.loadSnapshots(m.currentVariant())
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the snapshot browser.
func (m SnapshotsModel) View() string {
	if m.quitting || m.goingBack || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SNAPSHOTS"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("SNAPSHOTS - %s", m.variants[m.variantCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the browser with a variant sidebar.
func (m SnapshotsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Worlds\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range m.variants {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.variantCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := truncateName(v.Title, sidebarWidth-6)
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the browser with variant tabs above the table.
// truncateName shortens s to at most maxLen runes, marking the cut with ".".
func truncateName(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "."
}

func (m SnapshotsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.variantCursor {
			tabs[i] = activeTabStyle.Render(v.ID)
		} else {
			tabs[i] = tabStyle.Render(" " + v.ID + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.variants) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.variants[m.variantCursor].ID)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m SnapshotsModel) renderTableContent() string {
	if len(m.snapshots) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No snapshots saved yet.\nPress ctrl+s in a running world to save one.")
	}

	return m.table.View()
}

// Selected returns the name of the snapshot to open, or "".
func (m SnapshotsModel) Selected() string {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SnapshotsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SnapshotsModel) IsQuitting() bool {
	return m.quitting
}

// SnapshotsResult holds the outcome of the snapshot browser.
type SnapshotsResult struct {
	Open string // snapshot name, empty if none chosen
	Back bool
}

// RunSnapshots runs the snapshot browser.
func RunSnapshots(store *storage.Store, width, height int) (SnapshotsResult, error) {
	p := tea.NewProgram(
		NewSnapshotsModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SnapshotsResult{}, err
	}

	m, ok := finalModel.(SnapshotsModel)
	if !ok {
		return SnapshotsResult{}, nil
	}
	return SnapshotsResult{Open: m.Selected(), Back: m.IsGoingBack()}, nil
}
