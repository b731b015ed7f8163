package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/config"
)

// RulesMenuModel picks the rule set for a world before it starts. The
// first entry keeps whatever the variant's config file says.
type RulesMenuModel struct {
	variantID string
	title     string
	presets   []config.RulePreset
	cursor    int
	width     int
	height    int
	theme     Theme
	chosen    bool
	quitting  bool
	back      bool
}

// NewRulesMenuModel creates a rule picker for a variant.
func NewRulesMenuModel(variantID, title string, width, height int) RulesMenuModel {
	var presets []config.RulePreset
	if cfg, ok := config.Default(variantID); ok {
		if kind, err := cfg.Kind(); err == nil {
			presets = config.PresetsFor(kind)
		}
	}
	return RulesMenuModel{
		variantID: variantID,
		title:     title,
		presets:   presets,
		width:     width,
		height:    height,
		theme:     DefaultTheme(),
	}
}

// Init initializes the model.
func (m RulesMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RulesMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m RulesMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets) { // entry 0 is the configured rule
			m.cursor++
		}
	case MenuActionSelect:
		m.chosen = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the rule list.
func (m RulesMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select rules:", m.width))
	b.WriteString("\n\n")

	entries := make([]string, 0, len(m.presets)+1)
	entries = append(entries, "As configured")
	for _, p := range m.presets {
		r, _ := config.LookupRulePreset(p)
		entries = append(entries, fmt.Sprintf("%-15s S %-5s B %s", p, r.Survival, r.Birth))
	}

	for i, e := range entries {
		line := m.theme.MenuItemNormal.Render("  " + e + "  ")
		if i == m.cursor {
			line = m.theme.MenuItemActive.Render("> " + e + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuHint.Render("Enter: Start  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Preset returns the chosen preset, or "" for the configured rule.
func (m RulesMenuModel) Preset() config.RulePreset {
	if m.cursor == 0 || m.cursor > len(m.presets) {
		return ""
	}
	return m.presets[m.cursor-1]
}

// Chosen returns true once the user confirmed a rule.
func (m RulesMenuModel) Chosen() bool {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m RulesMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m RulesMenuModel) WantsBack() bool {
	return m.back
}

// RunRulesMenu runs the rule picker on its own. ok is false when the user
// backed out or quit.
func RunRulesMenu(variantID, title string, width, height int) (preset config.RulePreset, ok bool, err error) {
	p := tea.NewProgram(
		NewRulesMenuModel(variantID, title, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isRules := finalModel.(RulesMenuModel)
	if !isRules || !m.Chosen() {
		return "", false, nil
	}
	return m.Preset(), true, nil
}
