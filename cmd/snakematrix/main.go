// snakematrix is a terminal tone matrix driven by a snake.
//
// Tap cells to drop food, steer the snake onto it, and listen as the beat
// sweeps across the grid: every row the snake occupies in the beat column
// sounds its note, in the timbre of the last food eaten.
//
// Usage:
//
//	snakematrix              - Play (same as "snakematrix play")
//	snakematrix play         - Play
//	snakematrix scales       - List available pitch scales
//	snakematrix config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--width, --height  - Grid size (default: 8x5)
//	--seed <value>     - RNG seed for the snake's start
//	--scale <id>       - Pitch scale for the rows
//	--mute             - Disable audio
//	--log-file <path>  - Log destination (default: ~/.snakematrix/snakematrix.log)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagWidth   int
	flagHeight  int
	flagSeed    int64
	flagScale   string
	flagMute    bool
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakematrix",
	Short: "Snake Matrix - a tone matrix played by a snake",
	Long: `Snake Matrix is a terminal tone matrix. A snake crawls over the grid,
a beat sweeps it column by column, and every row holding the snake in the
beat column plays its note.

Available commands:
  play     - Start playing (default)
  scales   - Show all pitch scales
  config   - Print the effective configuration

Examples:
  snakematrix
  snakematrix --width 16 --height 8 --scale minor
  snakematrix play --seed 42 --mute
  snakematrix config --config ./my-matrix.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Grid width in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Grid height in cells (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScale, "scale", "", "Pitch scale (see 'snakematrix scales')")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio output")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snakematrix/snakematrix.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(configCmd)
}
