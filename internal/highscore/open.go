package highscore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/storage"
)

// Backend names accepted in configuration.
const (
	BackendSQLite = "sqlite"
	BackendGdata  = "gdata"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Open builds the store selected by cfg. db may be nil, in which case the
// sqlite backend is unavailable.
func Open(ctx context.Context, cfg config.HighScoreConfig, db *storage.Store) (Store, error) {
	switch cfg.Backend {
	case "", BackendSQLite:
		if db == nil {
			return nil, errors.New("highscore: sqlite backend needs a score database")
		}
		return NewSQLite(db, cfg.AppName), nil
	case BackendGdata:
		g, err := OpenGdata(cfg.AppName)
		if err != nil {
			return nil, err
		}
		return g, nil
	case BackendRedis:
		r, err := OpenRedis(cfg.RedisURL, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := r.Ping(pingCtx); err != nil {
			r.Close()
			return nil, fmt.Errorf("highscore: redis unreachable: %w", err)
		}
		return r, nil
	case BackendMemory:
		return &Memory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// OpenTracker opens the configured store and loads the stored value.
// Any failure degrades to an in-memory tracker; the error is logged, never
// returned, since a missing high score must not stop the game.
func OpenTracker(ctx context.Context, cfg config.HighScoreConfig, db *storage.Store, logger *log.Logger) *Tracker {
	store, err := Open(ctx, cfg, db)
	if err != nil {
		if logger != nil {
			logger.Warn("high score backend unavailable, keeping it in memory", "backend", cfg.Backend, "err", err)
		}
		store = &Memory{}
	}

	t := NewTracker(store, logger)
	if _, err := t.Load(ctx); err != nil && logger != nil {
		logger.Warn("cannot load high score", "backend", cfg.Backend, "err", err)
	}
	return t
}
