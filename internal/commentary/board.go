package commentary

import "sync"

// Board holds the latest commentary line. Writes from concurrent requests
// race freely: whichever resolves last wins, even if it was issued first.
type Board struct {
	mu   sync.RWMutex
	text string
	seq  uint64
}

// NewBoard creates a board showing initial.
func NewBoard(initial string) *Board {
	return &Board{text: initial}
}

// Set replaces the current line.
func (b *Board) Set(text string) {
	b.mu.Lock()
	b.text = text
	b.seq++
	b.mu.Unlock()
}

// Text returns the current line.
func (b *Board) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Version increments on every Set, letting views detect changes.
func (b *Board) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.seq
}
