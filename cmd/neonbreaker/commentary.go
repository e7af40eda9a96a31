package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-breaker/internal/commentary"
	"github.com/vovakirdan/neon-breaker/internal/config"
)

var (
	flagCommentaryAddr    string
	flagCommentaryBackend string
)

var commentaryCmd = &cobra.Command{
	Use:   "commentary",
	Short: "Commentary service tools",
}

var commentaryServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local commentary service",
	Long: `Serve commentary over HTTP for games configured with the "http" backend.

Endpoints:
  POST /v1/commentary   {"score": 120, "level": 2, "event": "victory"}
  GET  /healthz

The service answers with canned lines by default. With --backend gemini it
forwards requests to Gemini, keeping the API key on the server.

Examples:
  neonbreaker commentary serve
  neonbreaker commentary serve --addr :9000 --backend gemini`,
	Args: cobra.NoArgs,
	Run:  runCommentaryServe,
}

func init() {
	commentaryServeCmd.Flags().StringVar(&flagCommentaryAddr, "addr", ":8787", "HTTP listen address")
	commentaryServeCmd.Flags().StringVar(&flagCommentaryBackend, "backend", commentary.BackendCanned, "Generator: canned or gemini")
	commentaryCmd.AddCommand(commentaryServeCmd)
}

func runCommentaryServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}

	switch flagCommentaryBackend {
	case commentary.BackendCanned, commentary.BackendGemini:
	default:
		logger.Fatal("unsupported backend for the service", "backend", flagCommentaryBackend)
	}
	cfg.Commentary.Backend = flagCommentaryBackend

	gen, err := commentary.NewGenerator(cfg.Commentary)
	if err != nil {
		logger.Fatal("cannot create generator", "err", err)
	}

	srv := &http.Server{
		Addr:              flagCommentaryAddr,
		Handler:           commentary.NewRouter(gen, logger),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      commentary.Timeout(cfg.Commentary) + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("commentary service listening", "addr", srv.Addr, "backend", flagCommentaryBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server stopped", "err", err)
		return
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
