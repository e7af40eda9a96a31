package breakout

import (
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Identifiers used for score storage and display.
const (
	GameID    = "neonbreaker"
	GameTitle = "Neon Breaker"
)

// Minimum terminal size the canvas can be mapped onto.
const (
	MinScreenW = 40
	MinScreenH = 16
	hudRows    = 2
)

// TextSource provides the latest commentary line.
type TextSource interface {
	Text() string
}

// HighScoreSource provides the best score seen so far.
type HighScoreSource interface {
	High() int
}

// Game adapts the Controller to the terminal platform: it turns input
// frames into controller calls and draws the canvas onto a cell grid.
type Game struct {
	cfg     config.GameConfig
	opts    []Option
	ctl     *Controller
	runtime core.RuntimeConfig

	commentary TextSource
	highScore  HighScoreSource

	// Layout (computed from screen size)
	field          core.Rect // Inner playfield in cells, inside the border
	screenTooSmall bool
}

// New creates a game for the given configuration. Options are applied to
// every controller created by Reset.
func New(cfg config.GameConfig, opts ...Option) *Game {
	return &Game{cfg: cfg, opts: opts}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return GameTitle
}

// Attach wires read-only collaborators shown in the HUD. Either may be nil.
func (g *Game) Attach(text TextSource, high HighScoreSource) {
	g.commentary = text
	g.highScore = high
}

// Reset creates a fresh controller in START.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.ctl = NewController(g.cfg, runtime.Seed, g.opts...)
	g.calculateLayout()
}

// Resize recomputes the cell layout without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
}

func (g *Game) calculateLayout() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	g.screenTooSmall = w < MinScreenW || h < MinScreenH

	// HUD on top, then a bordered playfield
	g.field = core.NewRect(1, hudRows+1, w-2, h-hudRows-2)
}

// Playfield returns the canvas rectangle in cell coordinates, the space
// pointer samples arrive in.
func (g *Game) Playfield() core.RectF {
	return core.NewRectF(float64(g.field.X), float64(g.field.Y), float64(g.field.W), float64(g.field.H))
}

// Step applies one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.HasPointer {
		g.ctl.OnPointerMove(in.PointerX, g.Playfield())
	}
	if in.Has(core.ActionLeft) {
		g.ctl.Nudge(-1)
	}
	if in.Has(core.ActionRight) {
		g.ctl.Nudge(1)
	}

	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		switch g.ctl.State().Status {
		case StatusStart, StatusGameOver:
			g.ctl.Start()
		case StatusLevelComplete:
			g.ctl.NextLevel()
		}
	}
	if in.Has(core.ActionRestart) && g.ctl.State().Status == StatusGameOver {
		g.ctl.Start()
	}
	if in.Has(core.ActionPause) {
		g.ctl.TogglePause()
	}

	ev := g.ctl.Tick()

	return core.StepResult{
		State:        g.State(),
		Scored:       ev.Points(),
		LifeLost:     ev.LifeLost,
		LevelCleared: ev.LevelComplete,
	}
}

// State returns the platform view of the run.
func (g *Game) State() core.GameState {
	s := g.ctl.State()
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		Lives:    s.Lives,
		GameOver: s.Status == StatusGameOver,
		Paused:   s.Status == StatusPaused,
	}
}

// Status returns the lifecycle status.
func (g *Game) Status() Status {
	return g.ctl.State().Status
}

// Controller exposes the underlying simulation.
func (g *Game) Controller() *Controller {
	return g.ctl
}

// Snapshot returns the simulation snapshot with HUD values filled in.
func (g *Game) Snapshot() Snapshot {
	snap := g.ctl.Snapshot()
	if g.commentary != nil {
		snap.Commentary = g.commentary.Text()
	}
	snap.HighScore = snap.State.Score
	if g.highScore != nil && g.highScore.High() > snap.HighScore {
		snap.HighScore = g.highScore.High()
	}
	return snap
}
