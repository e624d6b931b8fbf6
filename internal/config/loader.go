package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bubblepop/internal/core"
)

// LoadBubblePop loads Bubble Pop configuration.
// Search order: customPath -> ~/.bubblepop/configs/bubblepop.yaml -> ./configs/bubblepop.yaml -> embedded default
// Files are applied on top of the defaults, so they may set only the keys they change.
func LoadBubblePop(customPath string) (BubblePopConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BubblePopConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BubblePopConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bubblepop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bubblepop.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBubblePopYAML)
	if err != nil {
		return DefaultBubblePopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (BubblePopConfig, error) {
	cfg := DefaultBubblePopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BubblePopConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BubblePopConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bubblepop", "configs", filename)
}

// Validate reports every setting that would break the game's invariants.
func (c BubblePopConfig) Validate() error {
	var errs []error

	if c.Round.Duration <= 0 {
		errs = append(errs, fmt.Errorf("config: round duration must be positive, got %d", c.Round.Duration))
	}
	if c.Round.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: tick interval must be positive, got %s", c.Round.TickInterval))
	}
	if c.Round.PointsPerPop <= 0 {
		errs = append(errs, fmt.Errorf("config: points per pop must be positive, got %d", c.Round.PointsPerPop))
	}

	if c.Spawn.Chance < 0 || c.Spawn.Chance > 1 {
		errs = append(errs, fmt.Errorf("config: spawn chance must be in [0, 1], got %g", c.Spawn.Chance))
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"radius", c.Spawn.Radius},
		{"red", c.Spawn.Red},
		{"green", c.Spawn.Green},
		{"blue", c.Spawn.Blue},
		{"drift_x", c.Spawn.DriftX},
		{"rise_speed", c.Spawn.RiseSpeed},
	}
	for _, nr := range ranges {
		if err := nr.r.validate(nr.name); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Spawn.Radius.Min <= 0 {
		errs = append(errs, fmt.Errorf("config: radius must be positive, got min %g", c.Spawn.Radius.Min))
	}
	if c.Spawn.RiseSpeed.Min <= 0 {
		errs = append(errs, fmt.Errorf("config: rise speed must be positive, got min %g", c.Spawn.RiseSpeed.Min))
	}

	if c.Pop.Shrink <= 0 {
		errs = append(errs, fmt.Errorf("config: pop shrink must be positive, got %g", c.Pop.Shrink))
	}
	if c.Pop.Fade <= 0 {
		errs = append(errs, fmt.Errorf("config: pop fade must be positive, got %g", c.Pop.Fade))
	}

	for _, hex := range []string{c.Style.Background, c.Style.Stroke, c.Style.Panel, c.Style.Text} {
		if _, err := core.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("config: style: %w", err))
		}
	}
	if c.Style.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("config: stroke width must not be negative, got %g", c.Style.StrokeWidth))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("config: audio volume must be in [0, 1], got %g", c.Audio.Volume))
	}

	return errors.Join(errs...)
}
