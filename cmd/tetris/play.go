package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagFrontend   string
	flagDifficulty string
	flagMusicDir   string
	flagNoMusic    bool
	flagSequential bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris",
	Long: `Start the game. A start screen waits for any key; after a loss the
"You Lost" screen shows for two seconds and the start screen returns.

Controls:
  Left/Right - Move
  Up         - Rotate
  Down       - Soft drop (hold)
  Space      - Hard drop
  C          - Hold piece
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower starting gravity
  normal - Configured gravity
  hard   - Faster starting gravity

Examples:
  tetris play
  tetris play --frontend gui
  tetris play --difficulty easy --no-music
  tetris play --music-dir ./music --sequential`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to run (see 'tetris frontends')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagMusicDir, "music-dir", "", "Directory of background music (overrides config)")
	playCmd.Flags().BoolVar(&flagNoMusic, "no-music", false, "Disable background music")
	playCmd.Flags().BoolVar(&flagSequential, "sequential", false, "Play tracks in order instead of shuffling")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Check if frontend exists
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'tetris frontends' to see available frontends.")
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source, "frontend", flagFrontend)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	host := registry.Host{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config: cfg,
		Music:  newJukebox(cfg.Audio, flagSeed, logger),
		Logger: logger,
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
		os.Exit(1)
	}

	runErr := frontend.Run(host)

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig resolves the config file and applies the play flags on top.
func loadConfig() (config.TetrisConfig, string, error) {
	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if flagMusicDir != "" {
		cfg.Audio.MusicDir = flagMusicDir
	}
	if flagNoMusic {
		cfg.Audio.Enabled = false
	}
	if flagSequential {
		cfg.Audio.Shuffle = false
	}
	return cfg, source, nil
}
