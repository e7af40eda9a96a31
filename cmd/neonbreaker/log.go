package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-breaker/internal/config"
)

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "neonbreaker",
	}), nil
}

// openLogFile opens ~/.neonbreaker/neonbreaker.log for appending. The TUI
// owns the terminal, so the game logs there instead of stderr.
func openLogFile() (*os.File, error) {
	dir := config.UserDir()
	if dir == "" {
		return nil, fmt.Errorf("cannot locate home directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "neonbreaker.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
