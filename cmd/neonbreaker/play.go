package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-breaker/internal/app"
	"github.com/vovakirdan/neon-breaker/internal/core"
	"github.com/vovakirdan/neon-breaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Neon Breaker.

Controls:
  Mouse          - Move the paddle
  Left/Right/A/D - Nudge the paddle
  Space/Enter    - Start / next level
  P/Esc          - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Configured values
  hard   - Faster ball, narrower paddle

Examples:
  neonbreaker play
  neonbreaker play --difficulty easy
  neonbreaker play --seed 42
  neonbreaker play --config ./my-breaker.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := app.Open(context.Background(), app.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		DBPath:     flagDBPath,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if a.Store() == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open scores database, runs will not be saved")
	}

	session := a.NewSession()
	runErr := tui.Run(session.Game, a.Store(), cfg, logger)
	session.Close()

	if err := a.Close(); err != nil {
		logger.Warn("shutdown", "err", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
