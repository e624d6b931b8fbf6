// Package tui provides the Bubble Tea front end for Bubble Pop.
// It handles the terminal UI loop, input mapping and drives the game's
// scheduler clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one display frame.
type TickMsg time.Time

// frameDuration returns the wall time of one frame at the given rate.
func frameDuration(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// tickCmd returns a Bubble Tea command that sends a tick after one frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameDuration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
