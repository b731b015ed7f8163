// Package tui provides the Bubble Tea front end for life worlds.
// It handles the terminal UI loop, key bindings, the variant menu,
// the snapshot browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances a running world by one generation. Seq identifies the
// tick loop that produced it so that a paused and resumed world never runs
// two loops at once.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// tickCmd schedules the next tick at tickRate generations per second.
func tickCmd(seq, tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
