package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Rules are the tunable constants of a session.
type Rules struct {
	Speed              SpeedPolicy
	SoftDropMultiplier int
	LockDelay          time.Duration
	LockResets         int
	PointsPerRow       int
	Spawn              Point
}

// DefaultRules mirrors the embedded configuration defaults.
func DefaultRules() Rules {
	return Rules{
		Speed:              DefaultSpeedPolicy(),
		SoftDropMultiplier: 5,
		LockDelay:          20 * time.Millisecond,
		LockResets:         10,
		PointsPerRow:       10,
		Spawn:              Point{X: 5, Y: 0},
	}
}

// RulesFromConfig converts the gameplay section of the YAML config.
func RulesFromConfig(c config.TetrisGameplay) Rules {
	return Rules{
		Speed:              SpeedPolicyFromConfig(c.FallSpeed),
		SoftDropMultiplier: c.SoftDropMultiplier,
		LockDelay:          c.LockDelay,
		LockResets:         c.LockResets,
		PointsPerRow:       c.PointsPerRow,
		Spawn:              Point{X: c.Spawn.Column, Y: c.Spawn.Row},
	}
}
