package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bubblepop.yaml
var defaultBubblePopYAML []byte

// DefaultBubblePopConfig returns the default Bubble Pop configuration.
func DefaultBubblePopConfig() BubblePopConfig {
	return BubblePopConfig{
		Round: RoundConfig{
			Duration:     15,
			TickInterval: time.Second,
			PointsPerPop: 10,
		},
		Spawn: SpawnConfig{
			Chance:    0.3,
			Radius:    Range{Min: 10, Max: 25},
			Red:       Range{Min: 240, Max: 255},
			Green:     Range{Min: 180, Max: 210},
			Blue:      Range{Min: 220, Max: 255},
			DriftX:    Range{Min: -2, Max: 2},
			RiseSpeed: Range{Min: 0.5, Max: 1.5},
		},
		Pop: PopConfig{
			Shrink: 0.5,
			Fade:   0.03,
		},
		Style: StyleConfig{
			Background:  "#000000",
			Stroke:      "#ffffff",
			StrokeWidth: 2,
			Panel:       "#f7b5d1",
			PanelWidth:  300,
			PanelHeight: 100,
			Text:        "#ffffff",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Window: WindowConfig{
			Width:  960,
			Height: 720,
			Title:  "Bubble Pop",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBubblePopYAML
}
