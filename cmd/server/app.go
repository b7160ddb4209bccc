package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DamVador/Hanyu-VocabTracker/internal/config"
	"github.com/DamVador/Hanyu-VocabTracker/internal/domain/srs"
	"github.com/DamVador/Hanyu-VocabTracker/internal/events"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/postgres"
	"github.com/DamVador/Hanyu-VocabTracker/internal/scheduler"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/auth"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/review"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/statistics"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService        auth.JWTService
	wordService       service.WordService
	reviewService     review.Service
	statisticsService statistics.Service

	eventEmitter *events.InMemoryEventEmitter
	scheduler    *scheduler.Scheduler
}

// newApplication wires stores, services and background jobs around db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	srsService, err := srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		MasteryThreshold:      cfg.SRS.MasteryThreshold,
		FirstIntervalDays:     cfg.SRS.FirstIntervalDays,
		SecondIntervalDays:    cfg.SRS.SecondIntervalDays,
		GrowthFactor:          cfg.SRS.GrowthFactor,
		IncorrectIntervalDays: cfg.SRS.IncorrectIntervalDays,
		MaxIntervalDays:       cfg.SRS.MaxIntervalDays,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create SRS service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	wordStore := postgres.NewPostgresWordStore(db, logger)
	recordStore := postgres.NewPostgresReviewRecordStore(db, logger)
	statisticsStore := postgres.NewPostgresStatisticsStore(db, logger)

	app.wordService, err = service.NewWordService(
		service.NewWordRepositoryAdapter(wordStore, db),
		service.NewUserRepositoryAdapter(userStore),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create word service: %w", err)
	}

	app.statisticsService = statistics.NewService(recordStore, wordStore, statisticsStore, logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.Subscribe(events.ReviewRecordedType, statistics.NewSnapshotRecorder(statisticsStore, logger))

	history := review.NewHistoryRepositoryAdapter(recordStore, db)
	app.reviewService = review.NewService(
		wordStore,
		history,
		review.NewHistoryRecorder(history, srsService, logger),
		app.eventEmitter,
		logger,
	)

	if cfg.Scheduler.SnapshotEnabled {
		app.scheduler = scheduler.New(cfg.Scheduler, app.statisticsService, logger)
	}

	params := srsService.Params()
	logger.Info("application initialized",
		slog.Int("mastery_threshold", params.MasteryThreshold),
		slog.Int("incorrect_interval_days", params.IncorrectIntervalDays),
		slog.Bool("snapshots_enabled", app.scheduler != nil))
	return app, nil
}

// cleanup releases the resources owned by the application.
func (app *application) cleanup() {
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
