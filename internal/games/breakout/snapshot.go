package breakout

import "math"

// Snapshot is a read-only copy of the simulation handed to presentation.
// It shares no memory with the controller.
type Snapshot struct {
	Tick     uint64
	Ball     Ball
	Paddle   Paddle
	Bricks   []Brick
	State    GameState
	RNGState uint64

	// Filled in by the terminal adapter
	Commentary string
	HighScore  int
}

// Snapshot returns a deep copy of the current entities and state.
func (c *Controller) Snapshot() Snapshot {
	bricks := make([]Brick, len(c.bricks))
	copy(bricks, c.bricks)

	return Snapshot{
		Tick:     c.tick,
		Ball:     c.ball,
		Paddle:   c.paddle,
		Bricks:   bricks,
		State:    c.state,
		RNGState: c.rng.State(),
	}
}

// BricksAlive counts standing bricks in the snapshot.
func (snap *Snapshot) BricksAlive() int {
	return CountAlive(snap.Bricks)
}

// Hash returns a simple hash of the simulation fields for determinism testing.
// Presentation-only fields are excluded.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.Ball.X, snap.Ball.Y, snap.Ball.DX, snap.Ball.DY, snap.Ball.Speed,
		snap.Paddle.X, snap.Paddle.Width,
	} {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + uint64(snap.State.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State.Lives)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State.Status) //#nosec G115 -- hash computation

	for _, b := range snap.Bricks {
		if b.Alive {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}

	return h*31 + snap.RNGState
}
