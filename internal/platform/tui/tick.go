// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, rendering and score
// persistence around the simulation core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a render frame. It carries the wall-clock
// time of the frame so the model can feed real deltas into the simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
