// Package breakout implements the Neon Breaker simulation: entity state,
// level building, pointer tracking, the per-frame physics step and the
// level lifecycle controller.
//
// All geometry is in canvas units (800x600 by default). Terminal cell
// mapping happens only in the render and input adapters.
package breakout

import (
	"math"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusPaused
	StatusLevelComplete
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusLevelComplete:
		return "LEVEL_COMPLETE"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Ball is the moving ball. Speed is the magnitude the velocity is kept at
// after every collision response.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Speed  float64
}

// Velocity returns the current magnitude of (DX, DY).
func (b Ball) Velocity() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.RectF {
	return core.NewRectF(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Paddle moves horizontally only.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// CenterX returns the horizontal centre of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Brick is a destructible block. Alive only ever goes from true to false.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Alive         bool
	Points        int
	Strength      int // Hits to destroy; always 1
	Row, Col      int
	Color         core.Color
}

// Bounds returns the brick rectangle.
func (b Brick) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// GameState is the owned mutable aggregate of a run.
type GameState struct {
	Score  int
	Level  int
	Lives  int
	Status Status
}
