package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	LifeChar   = '♥'
)

// Render draws one frame from a snapshot, so presentation never sees a
// half-updated simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	snap := g.Snapshot()

	g.renderHUD(dst, &snap)
	dst.DrawBox(core.NewRect(g.field.X-1, g.field.Y-1, g.field.W+2, g.field.H+2), core.ColorSlate)
	g.renderBricks(dst, snap.Bricks)
	g.renderPaddle(dst, snap.Paddle)
	g.renderBall(dst, snap.Ball)
	g.renderOverlay(dst, &snap)
}

// toCell maps a canvas point into the playfield, clamped to its cells.
func (g *Game) toCell(x, y float64) (int, int) {
	cx := g.field.X + int(x*float64(g.field.W)/g.cfg.Canvas.Width)
	cy := g.field.Y + int(y*float64(g.field.H)/g.cfg.Canvas.Height)
	return core.Clamp(cx, g.field.X, g.field.Right()-1), core.Clamp(cy, g.field.Y, g.field.Bottom()-1)
}

// renderHUD draws score, level, lives and high score on row 0 and the
// latest commentary on row 1.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %05d", snap.State.Score), core.ColorCyan)
	dst.DrawTextCenteredColored(0, fmt.Sprintf("LEVEL %d", snap.State.Level), core.ColorViolet)

	right := fmt.Sprintf("HI %d  %s", snap.HighScore, strings.Repeat(string(LifeChar), snap.State.Lives))
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorRose)

	if snap.Commentary != "" {
		dst.DrawTextCenteredColored(1, fmt.Sprintf("“%s”", snap.Commentary), core.ColorAmber)
	}
}

func (g *Game) renderBricks(dst *core.Screen, bricks []Brick) {
	for _, b := range bricks {
		if !b.Alive {
			continue
		}
		x0, y0 := g.toCell(b.X, b.Y)
		x1, _ := g.toCell(b.X+b.Width, b.Y)
		w := core.Clamp(x1-x0, 1, g.field.W)
		dst.DrawHLine(x0, y0, w, BrickChar, b.Color)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, p Paddle) {
	x0, y := g.toCell(p.X, p.Y)
	x1, _ := g.toCell(p.X+p.Width, p.Y)
	dst.DrawHLine(x0, y, core.Clamp(x1-x0, 1, g.field.W), PaddleChar, core.ParseColor(g.cfg.Palette.Paddle))
}

func (g *Game) renderBall(dst *core.Screen, b Ball) {
	x, y := g.toCell(b.X, b.Y)
	dst.SetColored(x, y, BallChar, core.ParseColor(g.cfg.Palette.Ball))
}

// renderOverlay draws the lifecycle message for non-playing states.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch snap.State.Status {
	case StatusStart:
		g.drawCenteredBox(dst, "NEON BREAKER", "Mouse or ←/→ to move · SPACE to start")
	case StatusPaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StatusLevelComplete:
		g.drawCenteredBox(dst, "LEVEL CLEAR!", fmt.Sprintf("Level %d next · SPACE to continue", snap.State.Level))
	case StatusGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d · SPACE or R to retry", snap.State.Score))
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleW := len([]rune(title))
	subW := len([]rune(subtitle))

	boxW := max(titleW, subW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorPink)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorPink)
	dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle)
}
