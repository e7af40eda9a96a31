package config

import (
	_ "embed"
)

//go:embed defaults/neonbreaker.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It matches defaults/neonbreaker.yaml and is used if the embed fails to parse.
func DefaultConfig() GameConfig {
	return GameConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			BottomOffset: 10,
			Speed:        8,
		},
		Ball: BallConfig{
			Radius:       8,
			BaseSpeed:    5,
			LevelSpeedup: 0.5,
		},
		Bricks: BricksConfig{
			Rows:       6,
			Cols:       10,
			Width:      65,
			Height:     25,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 35,
			BasePoints: 10,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Palette: PaletteConfig{
			Paddle: "sky",
			Ball:   "ice",
			Bricks: []string{"rose", "amber", "emerald", "violet", "cyan", "pink"},
		},
		Commentary: CommentaryConfig{
			Backend:         "canned",
			Endpoint:        "http://localhost:8787",
			Model:           "gemini-3-flash-preview",
			APIKeyEnv:       "GEMINI_API_KEY",
			TimeoutMS:       4000,
			Temperature:     0.8,
			MaxOutputTokens: 100,
			Language:        "Korean",
		},
		HighScore: HighScoreConfig{
			Backend:  "sqlite",
			AppName:  "neonbreaker",
			RedisURL: "redis://localhost:6379/0",
			RedisKey: "neonbreaker:highscore",
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func DefaultYAML() []byte {
	return defaultYAML
}
