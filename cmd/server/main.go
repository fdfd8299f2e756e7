package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"hsse/internal/platform/config"
	"hsse/internal/platform/httpserver"
	"hsse/internal/platform/logger"
)

// main wires the audit engine, its background workers and the HTTP surface,
// then runs them until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := build(ctx, cfg, log)
	if err != nil {
		log.Error("build application", "error", err)
		os.Exit(1)
	}
	defer app.close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.relay.Run(ctx) })
	g.Go(func() error { return app.sweeper.Run(ctx) })
	g.Go(func() error {
		return httpserver.Run(ctx, httpserver.New(cfg.Server.Addr, app.router), cfg.Server.ShutdownTimeout, log)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
