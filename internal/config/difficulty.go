package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI flag value to a preset.
// An empty string means "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts ball speed and paddle width for a difficulty preset
// and checks the result again. Normal keeps the configured values.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.BaseSpeed = 4
		cfg.Paddle.Width = 150
	case DifficultyHard:
		cfg.Ball.BaseSpeed = 6.5
		cfg.Paddle.Width = 90
	default:
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return nil
}
