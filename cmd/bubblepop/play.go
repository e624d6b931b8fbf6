package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. Your terminal must report mouse clicks.

Controls:
  Click          - Pop a bubble (or start the round)
  Space/Enter    - Start the round
  R              - New round (after game over)
  Q/Ctrl+C       - Quit

The terminal owns stdout while playing, so logs are only written when
--log-file is set.

Examples:
  bubblepop play
  bubblepop play --fps 30
  bubblepop play --config ./my-bubblepop.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, nil)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	gameCfg, err := config.LoadBubblePop(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting terminal game", "width", width, "height", height, "fps", flagFPS)
	if err := tui.Run(tui.Options{Game: gameCfg, Runtime: rt, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
