package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// WorldKeyMap defines the key bindings for the world view.
type WorldKeyMap struct {
	Run       key.Binding
	Next      key.Binding
	Back      key.Binding
	Step      key.Binding
	Clear     key.Binding
	Scatter   key.Binding
	Fill      key.Binding
	LayerUp   key.Binding
	LayerDown key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Save      key.Binding
	Dump      key.Binding
	Menu      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WorldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Next, k.Back, k.Clear, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WorldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Next, k.Back, k.Step},
		{k.Clear, k.Scatter, k.Fill},
		{k.LayerUp, k.LayerDown, k.Faster, k.Slower},
		{k.Save, k.Dump, k.Menu, k.Quit},
	}
}

// DefaultWorldKeyMap returns default key bindings.
func DefaultWorldKeyMap() WorldKeyMap {
	return WorldKeyMap{
		Run: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "run/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n", "l"),
			key.WithHelp("→/n", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "b", "h"),
			key.WithHelp("←/b", "back"),
		),
		Step: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "step (branch)"),
		),
		Clear: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "clear"),
		),
		Scatter: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "scatter gliders"),
		),
		Fill: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "random fill"),
		),
		LayerUp: key.NewBinding(
			key.WithKeys("]", "up", "k"),
			key.WithHelp("]", "next layer"),
		),
		LayerDown: key.NewBinding(
			key.WithKeys("[", "down", "j"),
			key.WithHelp("[", "prev layer"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save snapshot"),
		),
		Dump: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "write text dump"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionSnapshots
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionSnapshots
	}

	return MenuActionNone
}
