// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the fixed-tick
// scheduler.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one interval from now. The model only
// calls it after the current tick was processed, so ticks never overlap.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
