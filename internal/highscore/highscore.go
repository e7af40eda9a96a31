// Package highscore keeps the running best score: loaded once at startup,
// then written through whenever the live score beats it.
package highscore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Store persists a single integer.
type Store interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
	Close() error
}

// ErrUnknownBackend is returned by Open for unsupported backend names.
var ErrUnknownBackend = errors.New("highscore: unknown backend")

const saveTimeout = 2 * time.Second

// Tracker holds the best score in memory and persists improvements on a
// background writer, so Observe never blocks the game loop.
type Tracker struct {
	store  Store
	logger *log.Logger

	mu    sync.Mutex
	high  int
	saved int

	dirty   chan struct{}
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// NewTracker starts a tracker over store. A nil logger discards output.
func NewTracker(store Store, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{
		store:   store,
		logger:  logger.WithPrefix("highscore"),
		dirty:   make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go t.writer()
	return t
}

// Load reads the stored value. A failing store leaves the tracker at 0,
// running in memory only.
func (t *Tracker) Load(ctx context.Context) (int, error) {
	score, err := t.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("highscore: load: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if score > t.high {
		t.high = score
	}
	t.saved = t.high
	return t.high, nil
}

// Observe records a live score and schedules a write if it is a new best.
func (t *Tracker) Observe(score int) {
	t.mu.Lock()
	improved := score > t.high
	if improved {
		t.high = score
	}
	t.mu.Unlock()

	if improved {
		select {
		case t.dirty <- struct{}{}:
		default: // A write is already pending and will pick up the new value
		}
	}
}

// High returns the best score seen.
func (t *Tracker) High() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.high
}

func (t *Tracker) writer() {
	defer close(t.stopped)
	for {
		select {
		case <-t.dirty:
			t.flush()
		case <-t.done:
			t.flush()
			return
		}
	}
}

// flush writes the current best if it has not been stored yet.
func (t *Tracker) flush() {
	t.mu.Lock()
	high, saved := t.high, t.saved
	t.mu.Unlock()
	if high <= saved {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := t.store.Save(ctx, high); err != nil {
		t.logger.Warn("save failed", "score", high, "err", err)
		return
	}

	t.mu.Lock()
	if high > t.saved {
		t.saved = high
	}
	t.mu.Unlock()
	t.logger.Debug("saved", "score", high)
}

// Close flushes pending writes and closes the store.
func (t *Tracker) Close() error {
	var err error
	t.once.Do(func() {
		close(t.done)
		<-t.stopped
		err = t.store.Close()
	})
	return err
}
