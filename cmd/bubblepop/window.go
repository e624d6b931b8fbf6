package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/platform/gui"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a round.

Controls:
  Click          - Pop a bubble (or start the round)
  Space/Enter    - Start the round
  R              - New round (after game over)
  Q/Esc          - Quit

Window size defaults to the config's window section.

Examples:
  bubblepop window
  bubblepop window --width 1280 --height 800`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (0 = from config)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (0 = from config)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, os.Stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	gameCfg, err := config.LoadBubblePop(flagConfig)
	if err != nil {
		return err
	}

	width, height := gameCfg.Window.Width, gameCfg.Window.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := gui.Run(gui.Options{Game: gameCfg, Runtime: rt, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
