package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: TetrisGameplay{
			FallSpeed: FallSpeedConfig{
				Base:      270 * time.Millisecond,
				Step:      10 * time.Millisecond,
				PerPoints: 50,
				Floor:     50 * time.Millisecond,
			},
			SoftDropMultiplier: 5,
			LockDelay:          20 * time.Millisecond,
			LockResets:         10,
			PointsPerRow:       10,
			Spawn: SpawnConfig{
				Column: 5,
				Row:    0,
			},
		},
		Audio: TetrisAudio{
			Enabled:    true,
			MusicDir:   "assets/music",
			Shuffle:    true,
			Extensions: []string{".mp3", ".ogg", ".wav"},
			Volume:     0.5,
		},
		Display: TetrisDisplay{
			Ghost:   true,
			ShowFPS: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
