package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/KpmgFuture-Academy/fa01-fin-Edo/cliparse"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/router"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		slog.Error("listen failed", "addr", cfg.Addr(), "error", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, ln); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// run opens the store and serves on ln until ctx is cancelled
func run(ctx context.Context, cfg cliparse.Config, ln net.Listener) error {
	rs, err := store.Open(ctx, cfg)
	if err != nil {
		ln.Close()
		return err
	}

	server := &http.Server{
		Handler:           router.NewRouter(rs, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("Listening", "addr", ln.Addr().String(), "pages", cfg.PagesDir)
	return serve(ctx, server, ln, rs.Close)
}

// serve runs server until ctx is cancelled, drains in-flight requests,
// and only then calls closeStore
func serve(ctx context.Context, server *http.Server, ln net.Listener, closeStore func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// Shutdown returns once active requests have completed
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
		serveErr = <-errCh
	}
	if errors.Is(serveErr, http.ErrServerClosed) {
		serveErr = nil
	}

	if err := closeStore(); err != nil {
		return errors.Join(serveErr, err)
	}
	slog.Info("Store closed")
	return serveErr
}

func newLogger(cfg cliparse.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
