package main

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/audio/ebitenaudio"
	"github.com/vovakirdan/tui-tetris/internal/config"
)

// newJukebox builds the background music player from config. Music problems
// are logged and never stop the game.
func newJukebox(cfg config.TetrisAudio, seed int64, logger *log.Logger) *audio.Jukebox {
	policy := audio.Sequential
	if cfg.Shuffle {
		policy = audio.Random
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var backend audio.Backend = audio.NopBackend{}
	if cfg.Enabled {
		backend = ebitenaudio.NewBackend(cfg.Volume)
	}

	jukebox := audio.NewJukebox(backend, audio.Options{
		Dir:        cfg.MusicDir,
		Extensions: cfg.Extensions,
		Policy:     policy,
		Seed:       seed,
		Logger:     logger,
	})
	if !cfg.Enabled {
		return jukebox
	}
	if err := jukebox.Load(); err != nil {
		logger.Warn("music unavailable", "err", err)
	}
	return jukebox
}
