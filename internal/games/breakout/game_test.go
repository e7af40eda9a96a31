package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame() *Game {
	g := New(config.DefaultConfig())
	g.Reset(testRuntime())
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Start, then sweep the pointer back and forth
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputSequence[i].Set(core.ActionJump)
		case i%7 == 0:
			inputSequence[i].SetPointer(float64(1 + (i/7)%78))
		case i%5 < 2:
			inputSequence[i].Set(core.ActionRight)
		default:
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.State != snap2.State {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", snap1.State, snap2.State)
	}
	if snap1.Tick == 0 {
		t.Error("simulation never advanced")
	}
}

func TestGameSeedChangesServe(t *testing.T) {
	seen := map[bool]bool{}
	for seed := int64(1); seed <= 16; seed++ {
		rt := testRuntime()
		rt.Seed = seed
		g := New(config.DefaultConfig())
		g.Reset(rt)
		seen[g.Snapshot().Ball.DX > 0] = true
	}
	if len(seen) != 2 {
		t.Error("serve direction does not depend on the seed")
	}
}

func TestGameStepActions(t *testing.T) {
	g := newTestGame()

	if g.Status() != StatusStart {
		t.Fatalf("Status = %v, expected START", g.Status())
	}

	g.Step(press(core.ActionJump))
	if g.Status() != StatusPlaying {
		t.Fatalf("Status = %v after SPACE, expected PLAYING", g.Status())
	}

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Error("State().Paused = false after P")
	}
	g.Step(press(core.ActionPause))
	if g.Status() != StatusPlaying {
		t.Errorf("Status = %v after second P, expected PLAYING", g.Status())
	}

	// R does nothing while playing
	g.Step(press(core.ActionRestart))
	if g.Status() != StatusPlaying {
		t.Errorf("Status = %v after R while playing", g.Status())
	}

	g.ctl.state.Status = StatusGameOver
	g.Step(press(core.ActionRestart))
	if g.Status() != StatusPlaying || g.State().Lives != 3 {
		t.Errorf("R after game over: State = %+v", g.State())
	}

	g.ctl.state.Status = StatusLevelComplete
	g.Step(press(core.ActionConfirm))
	if g.Status() != StatusPlaying {
		t.Errorf("Enter after level clear: Status = %v", g.Status())
	}
}

func TestGamePointerMapping(t *testing.T) {
	g := newTestGame()
	// 80 columns: border at 0 and 79, playfield columns 1..78

	in := core.NewInputFrame()
	in.SetPointer(40) // 39 of 78 columns in = canvas 400
	g.Step(in)
	if x := g.Snapshot().Paddle.X; x != 340 {
		t.Errorf("paddle.X = %v, expected 340", x)
	}

	in.Clear()
	in.SetPointer(0.5) // On the border, outside the canvas
	g.Step(in)
	if x := g.Snapshot().Paddle.X; x != 340 {
		t.Errorf("paddle moved to %v on an off-canvas sample", x)
	}

	in.Clear()
	in.SetPointer(2)
	g.Step(in)
	if x := g.Snapshot().Paddle.X; x != 0 {
		t.Errorf("paddle.X = %v, expected clamped to 0", x)
	}

	g.Step(press(core.ActionRight))
	if x := g.Snapshot().Paddle.X; x != 8 {
		t.Errorf("paddle.X = %v after nudge, expected 8", x)
	}
}

type fixedText string

func (f fixedText) Text() string { return string(f) }

type fixedHigh int

func (f fixedHigh) High() int { return int(f) }

func TestGameRender(t *testing.T) {
	g := newTestGame()
	g.Attach(fixedText("준비되셨나요?"), fixedHigh(1234))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SCORE 00000", "LEVEL 1", "HI 1234", "NEON BREAKER", "준비되셨나요?"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	bricks := strings.Count(out, string(BrickChar))
	if bricks == 0 {
		t.Error("no bricks rendered")
	}

	g.Step(press(core.ActionJump))
	g.Render(screen)
	if strings.Contains(screen.String(), "NEON BREAKER") {
		t.Error("start overlay still shown while playing")
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("ball not rendered")
	}
}

func TestGameRenderBrickColors(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	colors := map[core.Color]bool{}
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == BrickChar {
				colors[c.Color] = true
			}
		}
	}
	if len(colors) != 6 {
		t.Errorf("bricks use %d colors, expected 6", len(colors))
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New(config.DefaultConfig())
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 30, 10
	g.Reset(rt)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 24)
	screen.Resize(80, 24)
	g.Render(screen)
	if strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message after resize")
	}
}

func TestGameHighScoreFallsBackToScore(t *testing.T) {
	g := newTestGame()
	g.Attach(nil, fixedHigh(10))
	g.ctl.state.Score = 50

	if hs := g.Snapshot().HighScore; hs != 50 {
		t.Errorf("HighScore = %d, expected current score 50", hs)
	}
}

func TestGameStepReportsEvents(t *testing.T) {
	g := newTestGame()
	g.Step(press(core.ActionJump))

	cfg := g.Controller().Config()
	canvas := core.NewRectF(0, 0, cfg.Canvas.Width, cfg.Canvas.Height)

	for i := 0; i < 3000; i++ {
		g.Controller().OnPointerMove(g.Snapshot().Ball.X, canvas)
		before := g.State().Score

		res := g.Step(core.NewInputFrame())
		if res.Scored != res.State.Score-before {
			t.Fatalf("tick %d: Scored = %d, score went %d -> %d", i, res.Scored, before, res.State.Score)
		}
		if res.Scored > 0 {
			return
		}
	}
	t.Fatal("no brick was hit")
}
