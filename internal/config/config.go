// Package config provides YAML-based game configuration loading for
// Bubble Pop.
package config

import (
	"fmt"
	"math/rand"
	"time"
)

// BubblePopConfig contains all configuration for the Bubble Pop game.
type BubblePopConfig struct {
	Round  RoundConfig  `yaml:"round"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Pop    PopConfig    `yaml:"pop"`
	Style  StyleConfig  `yaml:"style"`
	Audio  AudioConfig  `yaml:"audio"`
	Window WindowConfig `yaml:"window"`
}

// RoundConfig defines timing and scoring of a round.
type RoundConfig struct {
	Duration     int           `yaml:"duration"`       // Seconds on the countdown
	TickInterval time.Duration `yaml:"tick_interval"`  // Countdown period
	PointsPerPop int           `yaml:"points_per_pop"` // Score added per popped bubble
}

// SpawnConfig defines how new bubbles are created.
type SpawnConfig struct {
	Chance    float64 `yaml:"chance"` // Per-frame spawn probability
	Radius    Range   `yaml:"radius"`
	Red       Range   `yaml:"red"`
	Green     Range   `yaml:"green"`
	Blue      Range   `yaml:"blue"`
	DriftX    Range   `yaml:"drift_x"`    // Horizontal velocity
	RiseSpeed Range   `yaml:"rise_speed"` // Upward speed; vertical velocity is its negation
}

// PopConfig defines the fade-out of popped bubbles.
type PopConfig struct {
	Shrink float64 `yaml:"shrink"` // Radius lost per frame
	Fade   float64 `yaml:"fade"`   // Opacity lost per frame
}

// StyleConfig defines colors and stroke of drawn elements.
type StyleConfig struct {
	Background  string  `yaml:"background"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Panel       string  `yaml:"panel"`
	PanelWidth  float64 `yaml:"panel_width"`
	PanelHeight float64 `yaml:"panel_height"`
	Text        string  `yaml:"text"`
}

// AudioConfig defines the pop sound.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Volume   float64 `yaml:"volume"`
	PopSound string  `yaml:"pop_sound"` // Optional MP3 file; empty synthesizes a pop
}

// WindowConfig defines the desktop window front end.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample draws a value uniformly from [Min, Max).
func (r Range) Sample(rng *rand.Rand) float64 {
	return rng.Float64()*(r.Max-r.Min) + r.Min
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

func (r Range) validate(name string) error {
	if r.Max <= r.Min {
		return fmt.Errorf("config: %s range is empty: [%g, %g)", name, r.Min, r.Max)
	}
	return nil
}
