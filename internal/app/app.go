// Package app wires configuration, storage, high-score tracking and
// commentary into playable sessions. Both the local terminal and the SSH
// server build their games through it.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-breaker/internal/commentary"
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/games/breakout"
	"github.com/vovakirdan/neon-breaker/internal/highscore"
	"github.com/vovakirdan/neon-breaker/internal/storage"
)

// Options selects the files an App is built from.
type Options struct {
	ConfigPath string // Empty searches the default locations
	Difficulty string // Empty keeps the configured values
	DBPath     string // Empty runs without a score database
	Logger     *log.Logger
}

// App owns the process-wide collaborators.
type App struct {
	cfg       config.GameConfig
	store     *storage.Store
	tracker   *highscore.Tracker
	generator commentary.Generator
	logger    *log.Logger
}

// Open loads configuration and opens the collaborators. Only a broken
// configuration is fatal; storage and commentary problems are logged and
// the game runs without them.
func Open(ctx context.Context, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, logger: logger}

	if opts.DBPath != "" {
		store, err := storage.Open(opts.DBPath)
		if err != nil {
			logger.Warn("could not open scores database", "path", opts.DBPath, "err", err)
		} else {
			a.store = store
		}
	}

	a.tracker = highscore.OpenTracker(ctx, cfg.HighScore, a.store, logger)

	gen, err := commentary.NewGenerator(cfg.Commentary)
	if err != nil {
		logger.Warn("commentary unavailable, using canned lines", "backend", cfg.Commentary.Backend, "err", err)
		gen = commentary.Canned{}
	}
	a.generator = gen

	return a, nil
}

// Config returns the effective game configuration.
func (a *App) Config() config.GameConfig {
	return a.cfg
}

// Store returns the score database, or nil when none could be opened.
func (a *App) Store() *storage.Store {
	return a.store
}

// Tracker returns the shared high-score tracker.
func (a *App) Tracker() *highscore.Tracker {
	return a.tracker
}

// Logger returns the application logger.
func (a *App) Logger() *log.Logger {
	return a.logger
}

// Session is one player's game with its own commentary board.
type Session struct {
	Game  *breakout.Game
	Board *commentary.Board

	requester *commentary.Requester
}

// NewSession builds a game wired to the shared tracker and a fresh
// commentary board.
func (a *App) NewSession() *Session {
	s := &Session{Board: commentary.NewBoard(commentary.Greeting)}

	opts := []breakout.Option{breakout.WithScoreObserver(a.tracker)}
	if a.generator != nil {
		s.requester = commentary.NewRequester(a.generator, s.Board, commentary.Timeout(a.cfg.Commentary), a.logger)
		opts = append(opts, breakout.WithCommentator(s.requester))
	}

	s.Game = breakout.New(a.cfg, opts...)
	s.Game.Attach(s.Board, a.tracker)
	return s
}

// Close waits for in-flight commentary so no goroutine outlives the session.
func (s *Session) Close() {
	if s.requester != nil {
		s.requester.Wait()
	}
}

// Close flushes the high score and closes the database.
func (a *App) Close() error {
	var firstErr error
	if err := a.tracker.Close(); err != nil {
		firstErr = fmt.Errorf("close high score store: %w", err)
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close scores database: %w", err)
		}
	}
	return firstErr
}
