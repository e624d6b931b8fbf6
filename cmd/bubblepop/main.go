// bubblepop is a bubble-popping arcade game for the terminal and the desktop.
//
// Usage:
//
//	bubblepop play           - Play in the terminal (mouse required)
//	bubblepop window         - Play in a desktop window
//	bubblepop config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game config from a YAML file
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubblepop",
	Short: "Bubble Pop - pop rising bubbles before time runs out",
	Long: `Bubble Pop is a casual arcade game: bubbles rise from the bottom of the
screen and you pop them by clicking. Each pop scores 10 points; the round
ends when the countdown reaches zero.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the default configuration

Examples:
  bubblepop play
  bubblepop play --seed 42 --log-file bubblepop.log --log-level debug
  bubblepop window --config ./my-bubblepop.yaml
  bubblepop config > ~/.bubblepop/configs/bubblepop.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
