// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Gameplay TetrisGameplay `yaml:"gameplay"`
	Audio    TetrisAudio    `yaml:"audio"`
	Display  TetrisDisplay  `yaml:"display"`
}

// TetrisGameplay defines the rule-engine parameters.
type TetrisGameplay struct {
	FallSpeed          FallSpeedConfig `yaml:"fall_speed"`
	SoftDropMultiplier int             `yaml:"soft_drop_multiplier"` // Gravity divisor while soft drop is held
	LockDelay          time.Duration   `yaml:"lock_delay"`           // Grace time after a failed fall
	LockResets         int             `yaml:"lock_resets"`          // Moves/rotations before a forced lock
	PointsPerRow       int             `yaml:"points_per_row"`
	Spawn              SpawnConfig     `yaml:"spawn"`
}

// FallSpeedConfig describes the score-to-gravity step function:
// interval = max(base - step*(score/per_points), floor).
type FallSpeedConfig struct {
	Base      time.Duration `yaml:"base"`
	Step      time.Duration `yaml:"step"`
	PerPoints int           `yaml:"per_points"`
	Floor     time.Duration `yaml:"floor"`
}

// SpawnConfig is the anchor new pieces appear at.
type SpawnConfig struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
}

// TetrisAudio configures the background music jukebox.
type TetrisAudio struct {
	Enabled    bool     `yaml:"enabled"`
	MusicDir   string   `yaml:"music_dir"`
	Shuffle    bool     `yaml:"shuffle"`    // Random track order instead of sequential
	Extensions []string `yaml:"extensions"` // File suffixes treated as tracks
	Volume     float64  `yaml:"volume"`     // 0.0 - 1.0
}

// TetrisDisplay toggles optional HUD elements.
type TetrisDisplay struct {
	Ghost   bool `yaml:"ghost"`
	ShowFPS bool `yaml:"show_fps"`
}

// Validate checks that the configuration can drive a session.
func (c TetrisConfig) Validate() error {
	fs := c.Gameplay.FallSpeed
	switch {
	case fs.Base <= 0:
		return fmt.Errorf("%w: fall_speed.base must be positive", ErrInvalidConfig)
	case fs.Floor <= 0:
		return fmt.Errorf("%w: fall_speed.floor must be positive", ErrInvalidConfig)
	case fs.Step < 0:
		return fmt.Errorf("%w: fall_speed.step must not be negative", ErrInvalidConfig)
	case fs.PerPoints <= 0:
		return fmt.Errorf("%w: fall_speed.per_points must be positive", ErrInvalidConfig)
	case c.Gameplay.SoftDropMultiplier < 1:
		return fmt.Errorf("%w: soft_drop_multiplier must be at least 1", ErrInvalidConfig)
	case c.Gameplay.LockDelay < 0:
		return fmt.Errorf("%w: lock_delay must not be negative", ErrInvalidConfig)
	case c.Gameplay.LockResets < 0:
		return fmt.Errorf("%w: lock_resets must not be negative", ErrInvalidConfig)
	case c.Gameplay.PointsPerRow < 0:
		return fmt.Errorf("%w: points_per_row must not be negative", ErrInvalidConfig)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}
