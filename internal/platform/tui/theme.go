package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the world view and menus.
type Theme struct {
	// Cells
	Alive lipgloss.Style
	Dead  lipgloss.Style

	// HUD
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDRunning   lipgloss.Style
	HUDPaused    lipgloss.Style
	HUDSeparator lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style

	// Menu
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHint       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Alive: lipgloss.NewStyle().Foreground(lipgloss.Color("46")), // Lime green
		Dead:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		HUDTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		HUDRunning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		HUDPaused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		MenuHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
