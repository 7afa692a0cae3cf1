// tetris is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	tetris play              - Play (terminal by default)
//	tetris frontends         - List available frontends
//	tetris shapes            - Show the piece catalog
//	tetris tracks            - List background music tracks
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/logging"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-tetris/internal/platform/gui"
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tui"
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
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris stacks falling pieces into full rows, in the terminal or in a window.

Available commands:
  play       - Start the game
  frontends  - Show the available frontends
  shapes     - Print every piece and rotation
  tracks     - List the background music
  config     - Print the effective configuration

Examples:
  tetris play
  tetris play --frontend gui
  tetris play --difficulty hard --seed 42
  tetris tracks --music-dir ~/music`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from the log flags. Without --log-file
// it writes to fallback. The returned func closes the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	return logging.New(fallback, logging.Options{Level: flagLogLevel, File: flagLogFile})
}

// commandLogger is newLogger for commands that do not own the terminal:
// logs go to stderr unless --log-file is set. Bad flags exit.
func commandLogger() (*log.Logger, func()) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog
}
