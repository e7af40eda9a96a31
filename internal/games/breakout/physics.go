package breakout

import (
	"math"

	"github.com/vovakirdan/neon-breaker/internal/config"
)

// Events are raised by a single physics step.
type Events struct {
	Scored        []int // Points of every brick destroyed this step, in brick order
	LifeLost      bool
	LevelComplete bool
}

// Points returns the total points scored in the step.
func (e Events) Points() int {
	total := 0
	for _, p := range e.Scored {
		total += p
	}
	return total
}

// World holds the static values the physics step reads.
type World struct {
	Width, Height float64
	Ball          config.BallConfig
}

// WorldFromConfig extracts physics constants from a game config.
func WorldFromConfig(cfg config.GameConfig) World {
	return World{
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		Ball:   cfg.Ball,
	}
}

// Step advances the ball by one frame and resolves collisions in a fixed
// order: walls, floor, paddle, bricks. Bricks are mutated in place.
// It is pure numeric work and must only be called while PLAYING.
func Step(w World, ball *Ball, paddle Paddle, bricks []Brick, level int, rng *SimpleRNG) Events {
	var ev Events

	// Fixed per-frame displacement, no delta time
	ball.X += ball.DX
	ball.Y += ball.DY

	if ball.X+ball.Radius > w.Width || ball.X-ball.Radius < 0 {
		ball.DX = -ball.DX
	}
	if ball.Y-ball.Radius < 0 {
		ball.DY = -ball.DY
	}

	// The floor is not a wall: serve again within this step.
	if ball.Y+ball.Radius > w.Height {
		ev.LifeLost = true
		Serve(w, ball, paddle, level, rng)
	}

	// Top face only. A paddle moving under a rising ball still catches it.
	if ball.Y+ball.Radius > paddle.Y && ball.X > paddle.X && ball.X < paddle.X+paddle.Width {
		Deflect(ball, paddle)
	}

	// Every overlapping brick is hit; an even number of hits cancels the flip.
	box := ball.Bounds()
	for i := range bricks {
		b := &bricks[i]
		if !b.Alive || !box.Intersects(b.Bounds()) {
			continue
		}
		b.Alive = false
		ball.DY = -ball.DY
		ev.Scored = append(ev.Scored, b.Points)
	}

	if CountAlive(bricks) == 0 {
		ev.LevelComplete = true
	}
	return ev
}

// Deflect bounces the ball off the paddle. The exit angle depends on where
// the ball struck: centre goes straight up, the edges near horizontal.
// Speed is conserved exactly.
func Deflect(ball *Ball, paddle Paddle) {
	half := paddle.Width / 2
	if half <= 0 {
		return
	}
	impact := (ball.X - paddle.CenterX()) / half
	ball.DX = impact * ball.Speed
	// Rounding can make the radicand slightly negative at impact = +-1
	ball.DY = -math.Sqrt(math.Max(0, ball.Speed*ball.Speed-ball.DX*ball.DX))
}

// Serve places the ball on top of the paddle centre moving upward at the
// level's serve speed. The horizontal direction is random.
func Serve(w World, ball *Ball, paddle Paddle, level int, rng *SimpleRNG) {
	ball.Radius = w.Ball.Radius
	ball.Speed = w.Ball.ServeSpeed(level)
	ball.X = paddle.CenterX()
	ball.Y = paddle.Y - ball.Radius

	component := ball.Speed / math.Sqrt2
	ball.DX = component * rng.Sign()
	ball.DY = -component
}
