package breakout

import (
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Layout holds the brick grid geometry and reward base.
type Layout struct {
	Width, Height float64
	Padding       float64
	OffsetTop     float64
	OffsetLeft    float64
	BasePoints    int
	Palette       []core.Color // Cycled by row
}

// LayoutFromConfig builds a Layout from brick and palette configuration.
func LayoutFromConfig(b config.BricksConfig, palette []string) Layout {
	colors := make([]core.Color, 0, len(palette))
	for _, name := range palette {
		colors = append(colors, core.ParseColor(name))
	}
	return Layout{
		Width:      b.Width,
		Height:     b.Height,
		Padding:    b.Padding,
		OffsetTop:  b.OffsetTop,
		OffsetLeft: b.OffsetLeft,
		BasePoints: b.BasePoints,
		Palette:    colors,
	}
}

// BuildBricks constructs a fresh rows x cols grid in row-major order.
// Row 0 is farthest from the paddle and worth the most:
// points = BasePoints * (rows - row).
func BuildBricks(rows, cols int, layout Layout) []Brick {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	bricks := make([]Brick, 0, rows*cols)
	for r := range rows {
		color := core.ColorDefault
		if len(layout.Palette) > 0 {
			color = layout.Palette[r%len(layout.Palette)]
		}
		for c := range cols {
			bricks = append(bricks, Brick{
				X:        float64(c)*(layout.Width+layout.Padding) + layout.OffsetLeft,
				Y:        float64(r)*(layout.Height+layout.Padding) + layout.OffsetTop,
				Width:    layout.Width,
				Height:   layout.Height,
				Alive:    true,
				Points:   layout.BasePoints * (rows - r),
				Strength: 1,
				Row:      r,
				Col:      c,
				Color:    color,
			})
		}
	}
	return bricks
}

// CountAlive returns the number of bricks still standing.
func CountAlive(bricks []Brick) int {
	n := 0
	for i := range bricks {
		if bricks[i].Alive {
			n++
		}
	}
	return n
}
