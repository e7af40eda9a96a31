package breakout

import (
	"github.com/vovakirdan/neon-breaker/internal/commentary"
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Commentator receives fire-and-forget commentary requests.
// Implementations must not block the caller.
type Commentator interface {
	Request(score, level int, ev commentary.Event)
}

// ScoreObserver is notified after every score change.
type ScoreObserver interface {
	Observe(score int)
}

// Option configures a Controller.
type Option func(*Controller)

// WithCommentator sets the commentary collaborator.
func WithCommentator(c Commentator) Option {
	return func(ctl *Controller) {
		ctl.commentator = c
	}
}

// WithScoreObserver adds a score observer, e.g. a high-score tracker.
func WithScoreObserver(o ScoreObserver) Option {
	return func(ctl *Controller) {
		ctl.observers = append(ctl.observers, o)
	}
}

// Controller owns the simulation entities and the level lifecycle.
//
//	START/GAME_OVER --Start--> PLAYING
//	PLAYING --LifeLost, lives>0--> PLAYING
//	PLAYING --LifeLost, lives==0--> GAME_OVER
//	PLAYING --LevelComplete--> LEVEL_COMPLETE --NextLevel--> PLAYING
//	PLAYING <--TogglePause--> PAUSED
type Controller struct {
	cfg     config.GameConfig
	world   World
	layout  Layout
	tracker InputTracker
	rng     *SimpleRNG

	state  GameState
	ball   Ball
	paddle Paddle
	bricks []Brick
	tick   uint64

	commentator Commentator
	observers   []ScoreObserver
}

// NewController creates a controller in START with a full brick grid,
// a centred paddle and the ball on its serve position.
func NewController(cfg config.GameConfig, seed int64, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		world:  WorldFromConfig(cfg),
		layout: LayoutFromConfig(cfg.Bricks, cfg.Palette.Bricks),
		tracker: InputTracker{
			CanvasWidth: cfg.Canvas.Width,
			NudgeSpeed:  cfg.Paddle.Speed,
		},
		rng: NewSimpleRNG(seed),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.paddle = Paddle{
		X:      (cfg.Canvas.Width - cfg.Paddle.Width) / 2,
		Y:      cfg.Canvas.Height - cfg.Paddle.Height - cfg.Paddle.BottomOffset,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
	c.state = GameState{
		Level:  1,
		Lives:  cfg.Gameplay.Lives,
		Status: StatusStart,
	}
	c.loadLevel()
	return c
}

// loadLevel rebuilds the bricks and serves for the current level.
func (c *Controller) loadLevel() {
	c.bricks = BuildBricks(c.cfg.Bricks.Rows, c.cfg.Bricks.Cols, c.layout)
	Serve(c.world, &c.ball, c.paddle, c.state.Level, c.rng)
}

// Start begins a new game from START or GAME_OVER.
// Reports whether the transition happened.
func (c *Controller) Start() bool {
	if c.state.Status != StatusStart && c.state.Status != StatusGameOver {
		return false
	}

	c.state = GameState{
		Score:  0,
		Level:  1,
		Lives:  c.cfg.Gameplay.Lives,
		Status: StatusPlaying,
	}
	c.loadLevel()
	c.comment(commentary.EventStreak)
	return true
}

// NextLevel leaves LEVEL_COMPLETE with a fresh grid.
func (c *Controller) NextLevel() bool {
	if c.state.Status != StatusLevelComplete {
		return false
	}
	c.loadLevel()
	c.state.Status = StatusPlaying
	return true
}

// TogglePause switches between PLAYING and PAUSED.
func (c *Controller) TogglePause() bool {
	switch c.state.Status {
	case StatusPlaying:
		c.state.Status = StatusPaused
	case StatusPaused:
		c.state.Status = StatusPlaying
	default:
		return false
	}
	return true
}

// Tick runs one physics step and applies its events.
// Outside PLAYING it is a no-op and returns no events.
func (c *Controller) Tick() Events {
	if c.state.Status != StatusPlaying {
		return Events{}
	}
	c.tick++

	ev := Step(c.world, &c.ball, c.paddle, c.bricks, c.state.Level, c.rng)

	if pts := ev.Points(); pts > 0 {
		c.state.Score += pts
		for _, o := range c.observers {
			o.Observe(c.state.Score)
		}
	}

	if ev.LifeLost {
		c.state.Lives--
		if c.state.Lives <= 0 {
			c.state.Lives = 0
			c.state.Status = StatusGameOver
			c.comment(commentary.EventDefeat)
			return ev
		}
	}

	if ev.LevelComplete {
		c.state.Level++
		c.state.Status = StatusLevelComplete
		c.comment(commentary.EventVictory)
	}
	return ev
}

func (c *Controller) comment(ev commentary.Event) {
	if c.commentator != nil {
		c.commentator.Request(c.state.Score, c.state.Level, ev)
	}
}

// OnPointerMove forwards a pointer sample to the input tracker.
// playfield is the canvas rectangle in the pointer's coordinate space.
func (c *Controller) OnPointerMove(pointerX float64, playfield core.RectF) bool {
	return c.tracker.OnPointerMove(&c.paddle, pointerX, playfield)
}

// Nudge moves the paddle by one keyboard step.
func (c *Controller) Nudge(dir int) {
	c.tracker.Nudge(&c.paddle, dir)
}

// State returns a copy of the game state.
func (c *Controller) State() GameState {
	return c.state
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.GameConfig {
	return c.cfg
}
