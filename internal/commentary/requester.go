package commentary

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single generation.
const DefaultTimeout = 4 * time.Second

// Requester issues fire-and-forget generations and posts results to a Board.
// In-flight requests are never cancelled by newer ones.
type Requester struct {
	gen     Generator
	board   *Board
	timeout time.Duration
	logger  *log.Logger

	wg sync.WaitGroup
}

// NewRequester creates a requester. A zero timeout uses DefaultTimeout and
// a nil logger discards diagnostics.
func NewRequester(gen Generator, board *Board, timeout time.Duration, logger *log.Logger) *Requester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Requester{
		gen:     gen,
		board:   board,
		timeout: timeout,
		logger:  logger.WithPrefix("commentary"),
	}
}

// Request starts a generation and returns immediately.
func (r *Requester) Request(score, level int, ev Event) {
	req := Request{Score: score, Level: level, Event: ev}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.board.Set(r.resolve(req))
	}()
}

// resolve runs one generation and substitutes the fallbacks.
func (r *Requester) resolve(req Request) string {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	text, err := r.gen.Generate(ctx, req)
	if err != nil {
		r.logger.Warn("generation failed", "event", req.Event, "score", req.Score, "level", req.Level, "err", err)
		return ErrorFallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyFallback
	}
	r.logger.Debug("generated", "event", req.Event, "took", time.Since(start))
	return text
}

// Wait blocks until every issued request has resolved.
func (r *Requester) Wait() {
	r.wg.Wait()
}
