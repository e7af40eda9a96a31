// Package config provides YAML/TOML game configuration loading and
// difficulty presets for Neon Breaker.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all static configuration for a run.
// Geometry values are in canvas units, not terminal cells.
type GameConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas" toml:"canvas"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks" toml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Palette    PaletteConfig    `yaml:"palette" toml:"palette"`
	Commentary CommentaryConfig `yaml:"commentary" toml:"commentary"`
	HighScore  HighScoreConfig  `yaml:"highscore" toml:"highscore"`
}

// CanvasConfig defines the playfield size.
type CanvasConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Gap between paddle bottom and floor
	Speed        float64 `yaml:"speed" toml:"speed"`                 // Keyboard nudge per tick
}

// BallConfig defines ball size and speed.
type BallConfig struct {
	Radius       float64 `yaml:"radius" toml:"radius"`
	BaseSpeed    float64 `yaml:"base_speed" toml:"base_speed"`
	LevelSpeedup float64 `yaml:"level_speedup" toml:"level_speedup"` // Added to serve speed per level
}

// ServeSpeed returns the ball speed for a serve on the given level.
func (b BallConfig) ServeSpeed(level int) float64 {
	return b.BaseSpeed + float64(level)*b.LevelSpeedup
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows" toml:"rows"`
	Cols       int     `yaml:"cols" toml:"cols"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	OffsetTop  float64 `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left" toml:"offset_left"`
	BasePoints int     `yaml:"base_points" toml:"base_points"`
}

// GameplayConfig defines rules that are not geometry.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// PaletteConfig names the colors used by the terminal renderer.
type PaletteConfig struct {
	Paddle string   `yaml:"paddle" toml:"paddle"`
	Ball   string   `yaml:"ball" toml:"ball"`
	Bricks []string `yaml:"bricks" toml:"bricks"`
}

// CommentaryConfig selects and tunes the commentary collaborator.
type CommentaryConfig struct {
	Backend         string  `yaml:"backend" toml:"backend"`   // "canned", "gemini", "http" or "off"
	Endpoint        string  `yaml:"endpoint" toml:"endpoint"` // Base URL for the "http" backend
	Model           string  `yaml:"model" toml:"model"`
	APIKeyEnv       string  `yaml:"api_key_env" toml:"api_key_env"`
	TimeoutMS       int     `yaml:"timeout_ms" toml:"timeout_ms"`
	Temperature     float64 `yaml:"temperature" toml:"temperature"`
	MaxOutputTokens int     `yaml:"max_output_tokens" toml:"max_output_tokens"`
	Language        string  `yaml:"language" toml:"language"`
}

// HighScoreConfig selects the high-score persistence backend.
type HighScoreConfig struct {
	Backend  string `yaml:"backend" toml:"backend"` // "sqlite", "gdata", "redis" or "memory"
	AppName  string `yaml:"app_name" toml:"app_name"`
	RedisURL string `yaml:"redis_url" toml:"redis_url"`
	RedisKey string `yaml:"redis_key" toml:"redis_key"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the geometry is playable.
func (c GameConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must have positive size", ErrInvalidConfig)
	case c.Paddle.Width <= 0 || c.Paddle.Width > c.Canvas.Width:
		return fmt.Errorf("%w: paddle width %.0f does not fit canvas width %.0f",
			ErrInvalidConfig, c.Paddle.Width, c.Canvas.Width)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.BaseSpeed < 0:
		return fmt.Errorf("%w: ball base speed must not be negative", ErrInvalidConfig)
	case c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0:
		return fmt.Errorf("%w: brick grid must have at least one row and column", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	}
	return nil
}
