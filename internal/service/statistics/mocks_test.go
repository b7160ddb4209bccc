package statistics

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

type mockRecords struct{ mock.Mock }

func (m *mockRecords) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	args := m.Called(ctx, userID, now)
	return args.Int(0), args.Error(1)
}

func (m *mockRecords) StatusCounts(ctx context.Context, userID uuid.UUID) (map[domain.LearningStatus]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.LearningStatus]int), args.Error(1)
}

func (m *mockRecords) ReviewedPerDay(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]domain.DailyCount, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCount), args.Error(1)
}

func (m *mockRecords) MostIncorrect(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DifficultWord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DifficultWord), args.Error(1)
}

type mockWords struct{ mock.Mock }

func (m *mockWords) CountWithoutRecord(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockWords) AddedPerDay(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]domain.DailyCount, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCount), args.Error(1)
}

type mockSnapshots struct{ mock.Mock }

func (m *mockSnapshots) IncrementAnswers(
	ctx context.Context,
	userID uuid.UUID,
	day time.Time,
	correct, wordReviewed bool,
) error {
	return m.Called(ctx, userID, day, correct, wordReviewed).Error(0)
}

func (m *mockSnapshots) SaveDistribution(
	ctx context.Context,
	userID uuid.UUID,
	day time.Time,
	dist domain.StatusDistribution,
) error {
	return m.Called(ctx, userID, day, dist).Error(0)
}

func (m *mockSnapshots) ListRange(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]domain.StatisticsSnapshot, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatisticsSnapshot), args.Error(1)
}

func (m *mockSnapshots) ActiveDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *mockSnapshots) UsersWithWords(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	svc       Service
	records   *mockRecords
	words     *mockWords
	snapshots *mockSnapshots
}

func newFixture() *fixture {
	f := &fixture{records: &mockRecords{}, words: &mockWords{}, snapshots: &mockSnapshots{}}
	f.svc = NewService(f.records, f.words, f.snapshots, quietLogger())
	return f
}
