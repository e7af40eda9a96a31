package breakout

import "github.com/vovakirdan/neon-breaker/internal/core"

// InputTracker turns pointer samples and keyboard nudges into paddle
// positions clamped to [0, CanvasWidth-paddle.Width].
type InputTracker struct {
	CanvasWidth float64
	NudgeSpeed  float64 // Canvas units per keyboard nudge
}

// OnPointerMove maps pointerX, given in the same coordinate space as
// playfield, into canvas units and centres the paddle under it.
// Samples not strictly inside the canvas are ignored and the paddle holds
// its last position. Reports whether the paddle was updated.
func (t InputTracker) OnPointerMove(p *Paddle, pointerX float64, playfield core.RectF) bool {
	if playfield.W <= 0 {
		return false
	}

	relative := (pointerX - playfield.X) * t.CanvasWidth / playfield.W
	if relative <= 0 || relative >= t.CanvasWidth {
		return false
	}

	p.X = core.ClampF(relative-p.Width/2, 0, t.CanvasWidth-p.Width)
	return true
}

// Nudge moves the paddle one step left (dir < 0) or right (dir > 0).
func (t InputTracker) Nudge(p *Paddle, dir int) {
	switch {
	case dir < 0:
		p.X -= t.NudgeSpeed
	case dir > 0:
		p.X += t.NudgeSpeed
	default:
		return
	}
	p.X = core.ClampF(p.X, 0, t.CanvasWidth-p.Width)
}
