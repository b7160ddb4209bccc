package review

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/events"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// mockHistoryRepository stores what it is given when Upsert is stubbed
// with Return(nil, nil).
type mockHistoryRepository struct {
	mock.Mock
	db *sql.DB
}

func (m *mockHistoryRepository) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewRecord), args.Error(1)
}

func (m *mockHistoryRepository) LockPair(ctx context.Context, userID, wordID uuid.UUID) error {
	return m.Called(ctx, userID, wordID).Error(0)
}

func (m *mockHistoryRepository) GetForUpdate(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.ReviewRecord, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewRecord), args.Error(1)
}

func (m *mockHistoryRepository) Upsert(
	ctx context.Context,
	record *domain.ReviewRecord,
) (*domain.ReviewRecord, error) {
	args := m.Called(ctx, record)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) == nil {
		stored := *record
		return &stored, nil
	}
	return args.Get(0).(*domain.ReviewRecord), nil
}

func (m *mockHistoryRepository) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]store.DueWord, error) {
	args := m.Called(ctx, userID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.DueWord), args.Error(1)
}

func (m *mockHistoryRepository) WithTx(*sql.Tx) HistoryRepository { return m }

func (m *mockHistoryRepository) DB() *sql.DB { return m.db }

type mockWordFinder struct {
	mock.Mock
}

func (m *mockWordFinder) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

type captureEmitter struct {
	events []*events.Event
	err    error
}

func (e *captureEmitter) EmitEvent(_ context.Context, event *events.Event) error {
	e.events = append(e.events, event)
	return e.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHistoryMock(t *testing.T) (*mockHistoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &mockHistoryRepository{db: db}, sqlMock
}
