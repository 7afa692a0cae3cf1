package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List background music tracks",
	Long: `Scans the music directory (config audio.music_dir, or --music-dir)
and lists the files the jukebox would play.`,
	Args: cobra.NoArgs,
	Run:  runTracks,
}

func init() {
	tracksCmd.Flags().StringVar(&flagMusicDir, "music-dir", "", "Directory of background music (overrides config)")
}

func runTracks(cmd *cobra.Command, args []string) {
	logger, closeLog := commandLogger()
	defer closeLog()

	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)
	dir := cfg.Audio.MusicDir
	if flagMusicDir != "" {
		dir = flagMusicDir
	}

	tracks, err := audio.ScanDir(dir, cfg.Audio.Extensions)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("music dir scanned", "dir", dir, "tracks", len(tracks))
	if len(tracks) == 0 {
		fmt.Printf("No tracks in %s.\n", dir)
		return
	}

	fmt.Printf("Tracks in %s:\n\n", dir)
	for i, t := range tracks {
		fmt.Printf("  %2d. %s\n", i+1, t.Name)
	}
}
