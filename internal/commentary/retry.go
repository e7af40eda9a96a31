package commentary

import (
	"context"
	"errors"
	"time"
)

// transientError wraps a failure worth another attempt: a network error or
// a 5xx reply.
type transientError struct{ err error }

func transient(err error) error { return &transientError{err: err} }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var t *transientError
	return errors.As(err, &t)
}

// retry calls fn until it succeeds, fails for good or has been tried
// attempts times. The pause between tries starts at wait and doubles.
func retry(ctx context.Context, attempts int, wait time.Duration, fn func() error) error {
	err := fn()
	for tries := 1; tries < attempts && isTransient(err); tries++ {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait *= 2
		err = fn()
	}
	return err
}
