package bubblepop

import (
	"fmt"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

// Style holds the parsed colors and sizes used for drawing.
type Style struct {
	Background  core.Color
	Stroke      core.Color
	StrokeWidth float64
	Panel       core.Color
	PanelWidth  float64
	PanelHeight float64
	Text        core.Color
}

// NewStyle parses the color strings of a style config.
func NewStyle(cfg config.StyleConfig) (Style, error) {
	s := Style{
		StrokeWidth: cfg.StrokeWidth,
		PanelWidth:  cfg.PanelWidth,
		PanelHeight: cfg.PanelHeight,
	}
	for _, c := range []struct {
		dst *core.Color
		hex string
	}{
		{&s.Background, cfg.Background},
		{&s.Stroke, cfg.Stroke},
		{&s.Panel, cfg.Panel},
		{&s.Text, cfg.Text},
	} {
		parsed, err := core.ParseHex(c.hex)
		if err != nil {
			return Style{}, fmt.Errorf("bubblepop: style: %w", err)
		}
		*c.dst = parsed
	}
	return s, nil
}

// Line offset between the title and subtitle of a panel.
const panelLineGap = 40

// drawPanel clears the surface and draws a centered panel with two lines.
func drawPanel(dst core.Surface, style Style, title, subtitle string) {
	core.ClearAll(dst)

	cx, cy := dst.Width()/2, dst.Height()/2
	dst.FillRect(cx-style.PanelWidth/2, cy-style.PanelHeight/2, style.PanelWidth, style.PanelHeight, style.Panel)
	dst.DrawText(cx, cy, title, style.Text, core.AlignCenter)
	dst.DrawText(cx, cy+panelLineGap, subtitle, style.Text, core.AlignCenter)
}

// drawTitleScreen shows the start prompt before the round begins.
func drawTitleScreen(dst core.Surface, style Style) {
	drawPanel(dst, style, "BUBBLE POP", "Click to start")
}

// drawGameOverScreen shows the final score.
func drawGameOverScreen(dst core.Surface, style Style, score int) {
	drawPanel(dst, style, "GAME OVER", fmt.Sprintf("Your Score: %d", score))
}
