package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset.
// Empty string selects normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// BaseFallForPreset returns the starting gravity interval for a preset.
func BaseFallForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 350 * time.Millisecond
	case DifficultyHard:
		return 200 * time.Millisecond
	default:
		return 270 * time.Millisecond
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Normal keeps whatever base the loaded config carries.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == DifficultyNormal || preset == "" {
		return
	}
	cfg.Gameplay.FallSpeed.Base = BaseFallForPreset(preset)
}
