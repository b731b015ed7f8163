package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenRules
	screenSnapshots
	screenWorld
)

// AppModel runs the full flow inside one Bubble Tea program:
// menu -> rules -> world -> menu, with a detour through the snapshot browser.
// SSH sessions use it because they cannot start a new program per screen.
type AppModel struct {
	launcher  Launcher
	width     int
	height    int
	screen    appScreen
	menu      MenuModel
	rules     RulesMenuModel
	snapshots SnapshotsModel
	world     WorldModel
	err       error
	quitting  bool
}

// NewAppModel creates the top-level model.
func NewAppModel(launcher Launcher, width, height int) AppModel {
	return AppModel{
		launcher: launcher,
		width:    width,
		height:   height,
		menu:     NewMenuModel(width, height),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenWorld:
		return m.updateWorld(msg)
	case screenRules:
		return m.updateRules(msg)
	case screenSnapshots:
		return m.updateSnapshots(msg)
	default:
		return m.updateMenu(msg)
	}
}

// Child models signal completion with tea.Quit; the app swallows that and
// switches screens instead, so only its own quits end the program.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if mm, ok := newMenu.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsSnapshots():
		m.snapshots = NewSnapshotsModel(m.launcher.Store, m.width, m.height)
		m.screen = screenSnapshots
		m.menu = NewMenuModel(m.width, m.height)
		return m, m.snapshots.Init()

	case m.menu.Selected() != nil:
		item := *m.menu.Selected()
		m.menu = NewMenuModel(m.width, m.height)
		m.rules = NewRulesMenuModel(item.VariantID, item.Title, m.width, m.height)
		m.screen = screenRules
		return m, m.rules.Init()
	}

	return m, cmd
}

func (m AppModel) updateRules(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.rules.Update(msg)
	if rm, ok := newModel.(RulesMenuModel); ok {
		m.rules = rm
	}

	switch {
	case m.rules.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.rules.WantsBack():
		m.screen = screenMenu
		return m, nil

	case m.rules.Chosen():
		sess, opts, err := m.launcher.Build(m.rules.variantID, m.rules.Preset(), m.width, m.height)
		if err != nil {
			m.err = err
			m.screen = screenMenu
			return m, nil
		}
		return m.startWorld(NewWorldModel(sess, embedded(opts)))
	}

	return m, cmd
}

func (m AppModel) updateSnapshots(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.snapshots.Update(msg)
	if sm, ok := newModel.(SnapshotsModel); ok {
		m.snapshots = sm
	}

	switch {
	case m.snapshots.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.snapshots.IsGoingBack():
		m.screen = screenMenu
		return m, nil

	case m.snapshots.Selected() != "":
		sess, opts, err := m.launcher.Open(m.snapshots.Selected(), m.width, m.height)
		if err != nil {
			m.err = err
			m.screen = screenMenu
			return m, nil
		}
		return m.startWorld(NewWorldModel(sess, embedded(opts)))
	}

	return m, cmd
}

func (m AppModel) updateWorld(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.world.Update(msg)
	if wm, ok := newModel.(WorldModel); ok {
		m.world = wm
	}

	switch {
	case m.world.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.world.BackToMenu():
		m.screen = screenMenu
		return m, nil
	}

	return m, cmd
}

func (m AppModel) startWorld(w WorldModel) (tea.Model, tea.Cmd) {
	m.err = nil
	m.world = w
	m.screen = screenWorld
	return m, m.world.Init()
}

func embedded(opts WorldOptions) WorldOptions {
	opts.Embedded = true
	return opts
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenWorld:
		return m.world.View()
	case screenRules:
		return m.rules.View()
	case screenSnapshots:
		return m.snapshots.View()
	}

	v := m.menu.View()
	if m.err != nil {
		v += "\n" + centerText(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()), m.width)
	}
	return v
}
