package breakout

import (
	"testing"

	"github.com/vovakirdan/neon-breaker/internal/commentary"
	"github.com/vovakirdan/neon-breaker/internal/config"
)

type commentCall struct {
	score, level int
	ev           commentary.Event
}

type recordingCommentator struct {
	calls []commentCall
}

func (r *recordingCommentator) Request(score, level int, ev commentary.Event) {
	r.calls = append(r.calls, commentCall{score, level, ev})
}

type recordingObserver struct {
	scores []int
}

func (r *recordingObserver) Observe(score int) {
	r.scores = append(r.scores, score)
}

func newTestController(opts ...Option) *Controller {
	return NewController(config.DefaultConfig(), 12345, opts...)
}

// dropBall puts the ball just above the floor, falling.
func dropBall(c *Controller) {
	c.ball.X = 100
	c.ball.Y = 590
	c.ball.DX = 0
	c.ball.DY = 5
}

// aimAtFirstBrick puts the ball just above brick 0, falling into it.
func aimAtFirstBrick(c *Controller) {
	c.ball = Ball{X: 67, Y: 50, DX: 0, DY: 3, Radius: 8, Speed: 3}
}

// A fresh game waits in START with a full grid.
func TestNewControllerInitialState(t *testing.T) {
	c := newTestController()
	snap := c.Snapshot()

	if snap.State != (GameState{Score: 0, Level: 1, Lives: 3, Status: StatusStart}) {
		t.Errorf("State = %+v", snap.State)
	}
	if snap.BricksAlive() != 60 {
		t.Errorf("BricksAlive() = %d, expected 60", snap.BricksAlive())
	}
	if snap.Paddle.X != 340 || snap.Paddle.Y != 575 {
		t.Errorf("paddle at (%v, %v), expected centred at (340, 575)", snap.Paddle.X, snap.Paddle.Y)
	}
	if snap.Ball.X != snap.Paddle.CenterX() || snap.Ball.Y != snap.Paddle.Y-snap.Ball.Radius {
		t.Errorf("ball at (%v, %v), expected serve position", snap.Ball.X, snap.Ball.Y)
	}
	if snap.Ball.DY >= 0 {
		t.Errorf("serve DY = %v, expected upward", snap.Ball.DY)
	}
}

func TestTickOutsidePlayingIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
	}{
		{"start", func(c *Controller) {}},
		{"paused", func(c *Controller) { c.Start(); c.TogglePause() }},
		{"level complete", func(c *Controller) { c.Start(); c.state.Status = StatusLevelComplete }},
		{"game over", func(c *Controller) { c.Start(); c.state.Status = StatusGameOver }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			tc.setup(c)
			before := c.Snapshot()

			for range 100 {
				ev := c.Tick()
				if ev.LifeLost || ev.LevelComplete || len(ev.Scored) > 0 {
					t.Fatalf("Tick() emitted events outside PLAYING: %+v", ev)
				}
			}

			after := c.Snapshot()
			if before.Hash() != after.Hash() {
				t.Error("Tick() mutated the simulation outside PLAYING")
			}
		})
	}
}

func TestStartResetsRun(t *testing.T) {
	comm := &recordingCommentator{}
	c := newTestController(WithCommentator(comm))
	c.state = GameState{Score: 900, Level: 4, Lives: 0, Status: StatusGameOver}
	for i := range c.bricks {
		c.bricks[i].Alive = false
	}

	if !c.Start() {
		t.Fatal("Start() from GAME_OVER should succeed")
	}

	if c.State() != (GameState{Score: 0, Level: 1, Lives: 3, Status: StatusPlaying}) {
		t.Errorf("State = %+v", c.State())
	}
	if CountAlive(c.bricks) != 60 {
		t.Errorf("bricks alive = %d, expected 60", CountAlive(c.bricks))
	}
	if len(comm.calls) != 1 || comm.calls[0].ev != commentary.EventStreak {
		t.Errorf("commentary calls = %+v, expected one streak", comm.calls)
	}

	if c.Start() {
		t.Error("Start() while PLAYING should be refused")
	}
}

func TestBrickHitScores(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestController(WithScoreObserver(obs))
	c.Start()
	aimAtFirstBrick(c)

	c.Tick()

	if c.bricks[0].Alive {
		t.Error("brick 0 should be destroyed")
	}
	if c.State().Score != 60 {
		t.Errorf("Score = %d, expected 60", c.State().Score)
	}
	if c.ball.DY != -3 {
		t.Errorf("DY = %v, expected -3", c.ball.DY)
	}
	if len(obs.scores) != 1 || obs.scores[0] != 60 {
		t.Errorf("observed scores = %v, expected [60]", obs.scores)
	}
}

func TestLifeLostKeepsPlaying(t *testing.T) {
	c := newTestController()
	c.Start()
	dropBall(c)

	ev := c.Tick()

	if !ev.LifeLost {
		t.Fatal("expected LifeLost")
	}
	if c.State().Lives != 2 || c.State().Status != StatusPlaying {
		t.Errorf("State = %+v, expected 2 lives and PLAYING", c.State())
	}
}

// Dropping the last ball ends the game but keeps the score.
func TestLastLifeEndsGame(t *testing.T) {
	comm := &recordingCommentator{}
	c := newTestController(WithCommentator(comm))
	c.Start()
	c.state.Lives = 1
	c.state.Score = 250
	dropBall(c)

	c.Tick()

	if c.State().Lives != 0 {
		t.Errorf("Lives = %d, expected 0", c.State().Lives)
	}
	if c.State().Status != StatusGameOver {
		t.Errorf("Status = %v, expected GAME_OVER", c.State().Status)
	}
	if c.State().Score != 250 {
		t.Errorf("Score = %d, expected 250 kept", c.State().Score)
	}
	if c.ball.Y != c.paddle.Y-c.ball.Radius {
		t.Errorf("ball Y = %v, expected reset to serve position", c.ball.Y)
	}

	last := comm.calls[len(comm.calls)-1]
	if last != (commentCall{250, 1, commentary.EventDefeat}) {
		t.Errorf("last commentary = %+v, expected defeat", last)
	}

	frozen := c.Snapshot()
	c.Tick()
	after := c.Snapshot()
	if frozen.Hash() != after.Hash() {
		t.Error("ball advanced after GAME_OVER")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	c := newTestController()
	c.Start()

	gameOvers := 0
	for range 10 {
		dropBall(c)
		c.Tick()
		if c.State().Lives < 0 {
			t.Fatalf("Lives = %d", c.State().Lives)
		}
		if c.State().Status == StatusGameOver {
			gameOvers++
			if c.State().Lives != 0 {
				t.Errorf("GAME_OVER with %d lives", c.State().Lives)
			}
		}
	}
	if gameOvers == 0 {
		t.Error("never reached GAME_OVER")
	}
}

// Destroying the last brick completes the level once; bricks are rebuilt
// only on NextLevel.
func TestLevelCompleteLifecycle(t *testing.T) {
	comm := &recordingCommentator{}
	c := newTestController(WithCommentator(comm))
	c.Start()
	for i := 1; i < len(c.bricks); i++ {
		c.bricks[i].Alive = false
	}
	aimAtFirstBrick(c)

	ev := c.Tick()

	if !ev.LevelComplete {
		t.Fatal("expected LevelComplete")
	}
	if c.State().Status != StatusLevelComplete || c.State().Level != 2 {
		t.Errorf("State = %+v, expected LEVEL_COMPLETE on level 2", c.State())
	}
	if CountAlive(c.bricks) != 0 {
		t.Errorf("bricks rebuilt early: %d alive", CountAlive(c.bricks))
	}

	victories := 0
	for range 30 {
		if c.Tick().LevelComplete {
			t.Fatal("LevelComplete emitted twice")
		}
	}
	for _, call := range comm.calls {
		if call.ev == commentary.EventVictory {
			victories++
			if call.level != 2 {
				t.Errorf("victory commentary level = %d, expected 2", call.level)
			}
		}
	}
	if victories != 1 {
		t.Errorf("victory commentary requested %d times, expected 1", victories)
	}

	if c.Start() {
		t.Error("Start() from LEVEL_COMPLETE should be refused")
	}
	if !c.NextLevel() {
		t.Fatal("NextLevel() failed")
	}
	if c.State().Status != StatusPlaying || c.State().Level != 2 {
		t.Errorf("State = %+v, expected PLAYING on level 2", c.State())
	}
	if CountAlive(c.bricks) != 60 {
		t.Errorf("bricks alive = %d, expected 60", CountAlive(c.bricks))
	}
	if c.ball.Speed != 6 {
		t.Errorf("serve speed = %v, expected 5 + 2*0.5", c.ball.Speed)
	}
	if c.State().Score != 60 {
		t.Errorf("Score = %d, expected 60 carried over", c.State().Score)
	}
}

func TestNextLevelOnlyFromLevelComplete(t *testing.T) {
	c := newTestController()
	if c.NextLevel() {
		t.Error("NextLevel() from START should be refused")
	}
	c.Start()
	if c.NextLevel() {
		t.Error("NextLevel() from PLAYING should be refused")
	}
}

func TestTogglePause(t *testing.T) {
	c := newTestController()
	if c.TogglePause() {
		t.Error("TogglePause() from START should be refused")
	}

	c.Start()
	if !c.TogglePause() || c.State().Status != StatusPaused {
		t.Fatalf("Status = %v, expected PAUSED", c.State().Status)
	}
	if !c.TogglePause() || c.State().Status != StatusPlaying {
		t.Fatalf("Status = %v, expected PLAYING", c.State().Status)
	}
}

// Speed stays constant across a long rally of wall and paddle bounces.
func TestSpeedInvariantOverRally(t *testing.T) {
	c := newTestController()
	c.Start()
	for i := range c.bricks {
		c.bricks[i].Alive = i == 0
	}
	c.bricks[0].X, c.bricks[0].Y = -1000, -1000 // Out of reach

	for range 2000 {
		// Keep the paddle under the ball
		c.paddle.X = c.ball.X - c.paddle.Width/2 + 7
		c.Tick()
		if d := c.ball.Velocity() - c.ball.Speed; d > 1e-9 || d < -1e-9 {
			t.Fatalf("|v| = %v drifted from speed %v", c.ball.Velocity(), c.ball.Speed)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusStart:         "START",
		StatusPlaying:       "PLAYING",
		StatusPaused:        "PAUSED",
		StatusLevelComplete: "LEVEL_COMPLETE",
		StatusGameOver:      "GAME_OVER",
		Status(99):          "UNKNOWN",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q, expected %q", int(s), s.String(), want)
		}
	}
}
