// Package main runs the vocabulary review API server.
//
// Usage:
//
//	server [-config path] [-migrate up|down|status|version|reset]
//
// With -migrate the server applies the requested schema migration and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DamVador/Hanyu-VocabTracker/internal/config"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/postgres"
)

func main() {
	configFile := flag.String("config", "", "path to a config file (default: ./config.yaml if present)")
	migrate := flag.String("migrate", "", "run a migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configFile, *migrate); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile, migrate string) error {
	cfg, err := config.LoadWithOptions(config.Options{
		ConfigFile: configFile,
		EnvFiles:   []string{".env"},
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if migrate != "" {
		defer func() { _ = db.Close() }()
		return postgres.Migrate(ctx, db, migrate, log)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
