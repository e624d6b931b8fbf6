package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	hudTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f7b5d1"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	hudLowStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f87"))
)

// Seconds at which the countdown is highlighted.
const lowTimeThreshold = 5

// hud is the score and time display. The session pushes values into it;
// the model only reads them when rendering.
type hud struct {
	score   int
	seconds int
}

func (h *hud) ShowScore(score int)  { h.score = score }
func (h *hud) ShowTime(seconds int) { h.seconds = seconds }

// View renders the HUD as a single line of the given width.
func (h *hud) View(width int) string {
	timeStyle := hudValueStyle
	if h.seconds <= lowTimeThreshold {
		timeStyle = hudLowStyle
	}
	line := fmt.Sprintf("%s  Score: %s  Time: %s",
		hudTitleStyle.Render("BUBBLE POP"),
		hudValueStyle.Render(fmt.Sprint(h.score)),
		timeStyle.Render(fmt.Sprint(h.seconds)),
	)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// bell plays the pop cue as a terminal bell. Writes are best-effort.
type bell struct {
	w io.Writer
}

func (b bell) PlayPop() {
	//nolint:errcheck // Best-effort cue, game continues regardless
	io.WriteString(b.w, "\a")
}
