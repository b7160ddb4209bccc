package review

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// HistoryRepository is the review record storage the recorder and service need.
type HistoryRepository interface {
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error)
	LockPair(ctx context.Context, userID, wordID uuid.UUID) error
	GetForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error)
	Upsert(ctx context.Context, record *domain.ReviewRecord) (*domain.ReviewRecord, error)
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]store.DueWord, error)

	// WithTx returns a repository bound to tx.
	WithTx(tx *sql.Tx) HistoryRepository

	// DB returns the underlying database connection.
	DB() *sql.DB
}

// NewHistoryRepositoryAdapter lets a store.ReviewRecordStore be used where a
// HistoryRepository is expected.
func NewHistoryRepositoryAdapter(records store.ReviewRecordStore, db *sql.DB) HistoryRepository {
	return &historyRepositoryAdapter{records: records, db: db}
}

type historyRepositoryAdapter struct {
	records store.ReviewRecordStore
	db      *sql.DB
}

func (a *historyRepositoryAdapter) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error) {
	return a.records.Get(ctx, userID, wordID)
}

func (a *historyRepositoryAdapter) LockPair(ctx context.Context, userID, wordID uuid.UUID) error {
	return a.records.LockPair(ctx, userID, wordID)
}

func (a *historyRepositoryAdapter) GetForUpdate(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.ReviewRecord, error) {
	return a.records.GetForUpdate(ctx, userID, wordID)
}

func (a *historyRepositoryAdapter) Upsert(
	ctx context.Context,
	record *domain.ReviewRecord,
) (*domain.ReviewRecord, error) {
	return a.records.Upsert(ctx, record)
}

func (a *historyRepositoryAdapter) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]store.DueWord, error) {
	return a.records.ListDue(ctx, userID, now, limit)
}

func (a *historyRepositoryAdapter) WithTx(tx *sql.Tx) HistoryRepository {
	return &historyRepositoryAdapter{records: a.records.WithTx(tx), db: a.db}
}

func (a *historyRepositoryAdapter) DB() *sql.DB {
	return a.db
}
