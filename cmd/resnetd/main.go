// SPDX-License-Identifier: MIT

// Command resnetd serves the resistor network solver over HTTP.
//
//	resnetd [-config resnet.yaml] [-addr :8080]
//
// The config file is watched and reloaded on change; solver settings of a
// valid new file apply to subsequent requests.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/resnet/config"
	"github.com/katalvlaran/resnet/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	addr := flag.String("addr", "", "HTTP listen address (overrides server.addr)")
	flag.Parse()

	// ── Load config ──────────────────────────────────────────────────────────
	var (
		loader *config.Loader
		cfg    = config.Default()
		err    error
	)
	boot := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *cfgPath != "" {
		loader, err = config.NewLoader(*cfgPath, boot)
		if err != nil {
			boot.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = loader.Config()
	}

	logger, err := config.NewLogger(os.Stdout, cfg.Log)
	if err != nil {
		boot.Error("invalid log config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// ── Handler ──────────────────────────────────────────────────────────────
	handler, err := server.New(cfg, loader, logger)
	if err != nil {
		logger.Error("failed to build handler", "err", err)
		os.Exit(1)
	}

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	if loader != nil {
		loader.OnChange(func(c *config.Config) {
			logger.Info("solver settings reloaded",
				"workers", c.Solver.Workers, "pivoting", c.Solver.Pivoting, "epsilon", c.Solver.Epsilon)
		})
		stopWatch, err := loader.Watch()
		if err != nil {
			logger.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}
	srv := &http.Server{
		Addr:         listen,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Info("shutting down")
	case err := <-errc:
		logger.Error("server error", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown incomplete", "err", err)
	}
	logger.Info("goodbye")
}
