package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/statistics"
)

// MockStatisticsService implements statistics.Service for testing.
// Unset function fields return zero values and Err.
type MockStatisticsService struct {
	DistributionFn   func(ctx context.Context, userID uuid.UUID, now time.Time) (domain.StatusDistribution, error)
	AddedFn          func(ctx context.Context, userID uuid.UUID, r statistics.DateRange) ([]domain.DailyCount, error)
	ReviewedFn       func(ctx context.Context, userID uuid.UUID, r statistics.DateRange) ([]domain.DailyCount, error)
	AccuracyFn       func(ctx context.Context, userID uuid.UUID, r statistics.DateRange) ([]domain.DailyAccuracy, error)
	DifficultWordsFn func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DifficultWord, error)
	StreakFn         func(ctx context.Context, userID uuid.UUID, today time.Time) (domain.Streak, error)
	TakeSnapshotFn   func(ctx context.Context, userID uuid.UUID, now time.Time) error
	DailySnapshotsFn func(ctx context.Context, now time.Time) (int, error)

	Err error
}

var _ statistics.Service = (*MockStatisticsService)(nil)

// LearningStatusDistribution implements statistics.Service.
func (m *MockStatisticsService) LearningStatusDistribution(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (domain.StatusDistribution, error) {
	if m.DistributionFn != nil {
		return m.DistributionFn(ctx, userID, now)
	}
	return domain.StatusDistribution{}, m.Err
}

// WordsAddedTimeline implements statistics.Service.
func (m *MockStatisticsService) WordsAddedTimeline(
	ctx context.Context,
	userID uuid.UUID,
	r statistics.DateRange,
) ([]domain.DailyCount, error) {
	if m.AddedFn != nil {
		return m.AddedFn(ctx, userID, r)
	}
	return nil, m.Err
}

// WordsReviewedTimeline implements statistics.Service.
func (m *MockStatisticsService) WordsReviewedTimeline(
	ctx context.Context,
	userID uuid.UUID,
	r statistics.DateRange,
) ([]domain.DailyCount, error) {
	if m.ReviewedFn != nil {
		return m.ReviewedFn(ctx, userID, r)
	}
	return nil, m.Err
}

// AccuracyTimeline implements statistics.Service.
func (m *MockStatisticsService) AccuracyTimeline(
	ctx context.Context,
	userID uuid.UUID,
	r statistics.DateRange,
) ([]domain.DailyAccuracy, error) {
	if m.AccuracyFn != nil {
		return m.AccuracyFn(ctx, userID, r)
	}
	return nil, m.Err
}

// TopDifficultWords implements statistics.Service.
func (m *MockStatisticsService) TopDifficultWords(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.DifficultWord, error) {
	if m.DifficultWordsFn != nil {
		return m.DifficultWordsFn(ctx, userID, limit)
	}
	return nil, m.Err
}

// Streak implements statistics.Service.
func (m *MockStatisticsService) Streak(ctx context.Context, userID uuid.UUID, today time.Time) (domain.Streak, error) {
	if m.StreakFn != nil {
		return m.StreakFn(ctx, userID, today)
	}
	return domain.Streak{}, m.Err
}

// TakeSnapshot implements statistics.Service.
func (m *MockStatisticsService) TakeSnapshot(ctx context.Context, userID uuid.UUID, now time.Time) error {
	if m.TakeSnapshotFn != nil {
		return m.TakeSnapshotFn(ctx, userID, now)
	}
	return m.Err
}

// TakeDailySnapshots implements statistics.Service.
func (m *MockStatisticsService) TakeDailySnapshots(ctx context.Context, now time.Time) (int, error) {
	if m.DailySnapshotsFn != nil {
		return m.DailySnapshotsFn(ctx, now)
	}
	return 0, m.Err
}
