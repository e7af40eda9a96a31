// Package commentary produces short flavor-text reactions to game events.
//
// The game never waits for commentary: a Requester runs each request on its
// own goroutine and posts the result, or a fixed fallback on failure, to a
// single-slot Board that the HUD reads every frame.
package commentary

import (
	"context"
	"errors"
	"fmt"
)

// Event is the kind of moment being commented on.
type Event string

const (
	EventVictory Event = "victory" // Level cleared
	EventDefeat  Event = "defeat"  // Game over
	EventStreak  Event = "streak"  // New game started
)

// ParseEvent validates an event name received over the wire.
func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case EventVictory, EventDefeat, EventStreak:
		return Event(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}
}

// Fixed lines shown before the first response and when generation fails.
const (
	Greeting      = "준비되셨나요? 시작해보세요!"
	EmptyFallback = "계속해서 나아가세요!"
	ErrorFallback = "엄청난 플레이입니다!"
)

var (
	// ErrUnknownEvent is returned for event names outside victory/defeat/streak.
	ErrUnknownEvent = errors.New("commentary: unknown event")
	// ErrNetwork wraps transport and non-2xx failures of remote generators.
	ErrNetwork = errors.New("commentary: network error")
	// ErrNoAPIKey is returned when the gemini backend has no key configured.
	ErrNoAPIKey = errors.New("commentary: no API key")
)

// Request is the input of a single generation.
type Request struct {
	Score int   `json:"score"`
	Level int   `json:"level"`
	Event Event `json:"event"`
}

// Generator produces one line of commentary. Implementations honour ctx
// cancellation and may return an empty string.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
