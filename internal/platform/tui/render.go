package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubblepop/internal/core"
)

type cellColors struct {
	fg, bg string
}

// styleCache maps cell colors to lipgloss styles so each color pair is
// built once per program.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(fg, bg string) lipgloss.Style {
	k := cellColors{fg, bg}
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	c[k] = st
	return st
}

var defaultStyles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, defaultStyles)
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*2 + s.Rows())

	for y := 0; y < s.Rows(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Cols() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Cols() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG == "" && start.BG == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
