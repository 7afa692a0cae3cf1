package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// SpeedPolicy maps score to the gravity interval:
// max(Base - Step*(score/PerPoints), Floor).
type SpeedPolicy struct {
	Base      time.Duration
	Step      time.Duration
	PerPoints int
	Floor     time.Duration
}

// DefaultSpeedPolicy starts at 0.27s, speeds up 0.01s every 50 points and
// bottoms out at 0.05s.
func DefaultSpeedPolicy() SpeedPolicy {
	return SpeedPolicy{
		Base:      270 * time.Millisecond,
		Step:      10 * time.Millisecond,
		PerPoints: 50,
		Floor:     50 * time.Millisecond,
	}
}

// SpeedPolicyFromConfig converts the YAML fall-speed section.
func SpeedPolicyFromConfig(c config.FallSpeedConfig) SpeedPolicy {
	return SpeedPolicy{
		Base:      c.Base,
		Step:      c.Step,
		PerPoints: c.PerPoints,
		Floor:     c.Floor,
	}
}

// Interval returns the gravity interval for a score.
func (p SpeedPolicy) Interval(score int) time.Duration {
	per := p.PerPoints
	if per <= 0 {
		per = 1
	}
	milestones := score / per
	return max(p.Base-time.Duration(milestones)*p.Step, p.Floor)
}

// FallInterval applies the default policy.
func FallInterval(score int) time.Duration {
	return DefaultSpeedPolicy().Interval(score)
}
