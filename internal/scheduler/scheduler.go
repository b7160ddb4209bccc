// Package scheduler runs the periodic background jobs of the server.
// Today that is the daily statistics snapshot.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/DamVador/Hanyu-VocabTracker/internal/config"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
)

// DefaultSnapshotTime is the UTC time of day at which snapshots are taken
// when the configuration leaves it empty.
const DefaultSnapshotTime = "23:55"

// SnapshotTaker stores the daily statistics snapshot of every user.
type SnapshotTaker interface {
	TakeDailySnapshots(ctx context.Context, now time.Time) (int, error)
}

// Scheduler owns the cron loop. All jobs run in UTC and never overlap.
type Scheduler struct {
	cron      *gocron.Scheduler
	snapshots SnapshotTaker
	at        string
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	running bool
}

// New creates a Scheduler for the configured snapshot job.
func New(cfg config.SchedulerConfig, snapshots SnapshotTaker, logger *slog.Logger) *Scheduler {
	if snapshots == nil {
		panic("snapshots cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	at := cfg.SnapshotTime
	if at == "" {
		at = DefaultSnapshotTime
	}

	cron := gocron.NewScheduler(time.UTC)
	cron.SingletonModeAll()

	return &Scheduler{
		cron:      cron,
		snapshots: snapshots,
		at:        at,
		timeout:   30 * time.Minute,
		logger:    logger.With(slog.String("component", "scheduler")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the jobs and starts the loop without blocking.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("scheduler already started")
	}

	if _, err := s.cron.Every(1).Day().At(s.at).Do(s.RunSnapshots); err != nil {
		return err
	}
	s.cron.StartAsync()
	s.running = true

	s.logger.Info("scheduler started", slog.String("snapshot_time", s.at))
	return nil
}

// Stop halts the loop. A running job finishes on its own.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
	s.logger.Info("scheduler stopped")
}

// NextSnapshot returns the next planned snapshot run, or the zero time
// when the scheduler is not running.
func (s *Scheduler) NextSnapshot() time.Time {
	_, next := s.cron.NextRun()
	return next
}

// RunSnapshots takes today's snapshots once. Failures are logged.
func (s *Scheduler) RunSnapshots() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	log := s.logger.With(slog.String("job", "daily_snapshots"))
	ctx = logger.WithLogger(ctx, log)

	start := s.now()
	stored, err := s.snapshots.TakeDailySnapshots(ctx, start)
	if err != nil {
		log.Error("daily snapshots failed",
			slog.Int("stored", stored),
			slog.String("error", err.Error()))
		return
	}
	log.Info("daily snapshots stored",
		slog.Int("stored", stored),
		slog.Duration("duration", s.now().Sub(start)))
}
