// Package tui provides the Bubble Tea front end for minesweeper.
// It handles the terminal UI loop, input mapping and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval drives the elapsed-time display.
const tickInterval = time.Second

// TickMsg refreshes the timer of the game it was started for.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick for game id.
func tickCmd(id int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
