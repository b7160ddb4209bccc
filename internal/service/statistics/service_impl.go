package statistics

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
)

type serviceImpl struct {
	records   RecordReader
	words     WordCounter
	snapshots SnapshotRepository
	logger    *slog.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates a statistics Service. It panics on nil dependencies.
func NewService(records RecordReader, words WordCounter, snapshots SnapshotRepository, logger *slog.Logger) Service {
	if records == nil || words == nil || snapshots == nil {
		panic("statistics service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceImpl{
		records:   records,
		words:     words,
		snapshots: snapshots,
		logger:    logger.With(slog.String("component", "statistics_service")),
	}
}

func wrap(op string, err error) error {
	return service.NewServiceError("statistics", op, err)
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.NewValidationError("userID", "cannot be empty", domain.ErrInvalidID)
	}
	return nil
}

func (s *serviceImpl) LearningStatusDistribution(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (domain.StatusDistribution, error) {
	var dist domain.StatusDistribution
	if err := requireUser(userID); err != nil {
		return dist, err
	}

	// The three reads are independent; run them together.
	var (
		g      errgroup.Group
		counts map[domain.LearningStatus]int
		unseen int
		due    int
	)
	g.Go(func() (err error) {
		counts, err = s.records.StatusCounts(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		unseen, err = s.words.CountWithoutRecord(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		due, err = s.records.CountDue(ctx, userID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return dist, wrap("status_distribution", err)
	}

	for status, count := range counts {
		dist.Set(status, count)
	}
	dist.New = unseen
	dist.Due = due
	return dist, nil
}

func (s *serviceImpl) WordsAddedTimeline(
	ctx context.Context,
	userID uuid.UUID,
	r DateRange,
) ([]domain.DailyCount, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	counts, err := s.words.AddedPerDay(ctx, userID, r.From, r.To)
	if err != nil {
		return nil, wrap("words_added", err)
	}
	if counts == nil {
		counts = []domain.DailyCount{}
	}
	return counts, nil
}

func (s *serviceImpl) WordsReviewedTimeline(
	ctx context.Context,
	userID uuid.UUID,
	r DateRange,
) ([]domain.DailyCount, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	counts, err := s.records.ReviewedPerDay(ctx, userID, r.From, r.To)
	if err != nil {
		return nil, wrap("words_reviewed", err)
	}
	if counts == nil {
		counts = []domain.DailyCount{}
	}
	return counts, nil
}

func (s *serviceImpl) AccuracyTimeline(
	ctx context.Context,
	userID uuid.UUID,
	r DateRange,
) ([]domain.DailyAccuracy, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	snaps, err := s.snapshots.ListRange(ctx, userID, r.From, r.To)
	if err != nil {
		return nil, wrap("accuracy", err)
	}

	timeline := make([]domain.DailyAccuracy, 0, len(snaps))
	for _, snap := range snaps {
		if snap.CorrectAnswers+snap.IncorrectAnswers == 0 {
			continue
		}
		timeline = append(timeline, domain.DailyAccuracy{
			Day:       snap.SnapshotDate,
			Correct:   snap.CorrectAnswers,
			Incorrect: snap.IncorrectAnswers,
			Rate:      domain.Accuracy(snap.CorrectAnswers, snap.IncorrectAnswers),
		})
	}
	return timeline, nil
}

func (s *serviceImpl) TopDifficultWords(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.DifficultWord, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	switch {
	case limit < 0:
		return nil, domain.NewValidationError("limit", "must not be negative", domain.ErrValidation)
	case limit == 0:
		limit = DefaultDifficultWordsLimit
	case limit > MaxDifficultWordsLimit:
		limit = MaxDifficultWordsLimit
	}

	words, err := s.records.MostIncorrect(ctx, userID, limit)
	if err != nil {
		return nil, wrap("difficult_words", err)
	}
	if words == nil {
		words = []domain.DifficultWord{}
	}
	return words, nil
}

func (s *serviceImpl) Streak(ctx context.Context, userID uuid.UUID, today time.Time) (domain.Streak, error) {
	if err := requireUser(userID); err != nil {
		return domain.Streak{}, err
	}
	days, err := s.snapshots.ActiveDays(ctx, userID)
	if err != nil {
		return domain.Streak{}, wrap("streak", err)
	}
	return computeStreak(days, today), nil
}

// computeStreak expects distinct days, newest first. The current streak
// survives until the end of the day after the last active day.
func computeStreak(days []time.Time, today time.Time) domain.Streak {
	var streak domain.Streak
	if len(days) == 0 {
		return streak
	}

	today = domain.Day(today)
	run := 1
	streak.Longest = 1
	for i := 1; i < len(days); i++ {
		if domain.Day(days[i-1]).AddDate(0, 0, -1).Equal(domain.Day(days[i])) {
			run++
		} else {
			run = 1
		}
		if run > streak.Longest {
			streak.Longest = run
		}
	}

	latest := domain.Day(days[0])
	if latest.Equal(today) || latest.Equal(today.AddDate(0, 0, -1)) {
		streak.Current = 1
		for i := 1; i < len(days) && domain.Day(days[i-1]).AddDate(0, 0, -1).Equal(domain.Day(days[i])); i++ {
			streak.Current++
		}
	}
	return streak
}

func (s *serviceImpl) TakeSnapshot(ctx context.Context, userID uuid.UUID, now time.Time) error {
	dist, err := s.LearningStatusDistribution(ctx, userID, now)
	if err != nil {
		return err
	}
	if err := s.snapshots.SaveDistribution(ctx, userID, now, dist); err != nil {
		return wrap("take_snapshot", err)
	}
	return nil
}

func (s *serviceImpl) TakeDailySnapshots(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.snapshots.UsersWithWords(ctx)
	if err != nil {
		return 0, wrap("daily_snapshots", err)
	}

	var (
		mu     sync.Mutex
		stored int
		errs   []error
	)
	var g errgroup.Group
	g.SetLimit(snapshotConcurrency)
	for _, userID := range users {
		userID := userID
		g.Go(func() error {
			err := s.TakeSnapshot(ctx, userID, now)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error("failed to take snapshot",
					slog.String("error", err.Error()),
					slog.String("user_id", userID.String()))
				errs = append(errs, err)
				return nil
			}
			stored++
			return nil
		})
	}
	_ = g.Wait()

	log.Info("daily snapshots taken",
		slog.Int("users", len(users)),
		slog.Int("stored", stored),
		slog.Int("failed", len(errs)))
	return stored, errors.Join(errs...)
}
