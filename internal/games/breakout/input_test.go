package breakout

import (
	"testing"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

func TestOnPointerMove(t *testing.T) {
	tracker := InputTracker{CanvasWidth: 800, NudgeSpeed: 8}
	canvas := core.NewRectF(0, 0, 800, 600)

	tests := []struct {
		name     string
		pointerX float64
		expected float64
		applied  bool
	}{
		{"centre", 400, 340, true},
		{"clamped left", 10, 0, true},
		{"clamped right", 790, 680, true},
		{"left edge ignored", 0, 100, false},
		{"right edge ignored", 800, 100, false},
		{"outside left ignored", -50, 100, false},
		{"outside right ignored", 1200, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{X: 100, Y: 575, Width: 120, Height: 15}
			applied := tracker.OnPointerMove(&p, tc.pointerX, canvas)

			if applied != tc.applied {
				t.Errorf("OnPointerMove() = %v, expected %v", applied, tc.applied)
			}
			if p.X != tc.expected {
				t.Errorf("paddle.X = %v, expected %v", p.X, tc.expected)
			}
		})
	}
}

func TestOnPointerMoveScalesFromCells(t *testing.T) {
	tracker := InputTracker{CanvasWidth: 800}
	// 80 cells wide, starting at column 10
	field := core.NewRectF(10, 3, 80, 20)
	p := Paddle{Width: 120}

	if !tracker.OnPointerMove(&p, 50, field) {
		t.Fatal("pointer in the middle of the field should apply")
	}
	if p.X != 340 {
		t.Errorf("paddle.X = %v, expected 340", p.X)
	}

	if tracker.OnPointerMove(&p, 5, field) {
		t.Error("pointer left of the field should be ignored")
	}
	if p.X != 340 {
		t.Errorf("paddle moved to %v on an ignored sample", p.X)
	}
}

func TestNudgeClamps(t *testing.T) {
	tracker := InputTracker{CanvasWidth: 800, NudgeSpeed: 8}
	p := Paddle{X: 4, Width: 120}

	tracker.Nudge(&p, -1)
	if p.X != 0 {
		t.Errorf("after nudge left paddle.X = %v, expected 0", p.X)
	}

	p.X = 676
	tracker.Nudge(&p, 1)
	if p.X != 680 {
		t.Errorf("after nudge right paddle.X = %v, expected 680", p.X)
	}

	tracker.Nudge(&p, 0)
	if p.X != 680 {
		t.Errorf("zero nudge moved paddle to %v", p.X)
	}
}
