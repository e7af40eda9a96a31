package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-breaker/internal/app"
	"github.com/vovakirdan/neon-breaker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Neon Breaker SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game and commentator. Runs and the high
score are shared by everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neonbreaker/host_key

Examples:
  neonbreaker serve                           # Listen on :23234 with auto-generated key
  neonbreaker serve --ssh :2222               # Listen on port 2222
  neonbreaker serve --host-key ./my_host_key  # Use specific host key
  neonbreaker serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
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
		logger.Fatal("cannot start", "err", err)
	}
	defer a.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, a)
	if err != nil {
		logger.Error("cannot create server", "err", err)
		return
	}

	logger.Info("connect with", "cmd", fmt.Sprintf("ssh localhost -p %s", portOf(cfg.Address)))
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
