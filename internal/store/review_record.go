package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

// DueWord pairs a word with its review record. Record is nil for words
// that have never been reviewed.
type DueWord struct {
	Word   *domain.Word
	Record *domain.ReviewRecord
}

// ReviewRecordStore defines the interface for review record persistence.
// There is at most one record per (user, word) pair.
type ReviewRecordStore interface {
	// Get retrieves the review record for a (user, word) pair.
	// Returns ErrReviewRecordNotFound if the word has never been reviewed.
	// This method does NOT lock the row.
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error)

	// LockPair serialises writers of a (user, word) pair for the rest of the
	// current transaction, including writers racing to create the first record.
	// It must be called within a transaction.
	LockPair(ctx context.Context, userID, wordID uuid.UUID) error

	// GetForUpdate retrieves the review record with a row-level lock using SELECT FOR UPDATE.
	// Returns ErrReviewRecordNotFound if the word has never been reviewed.
	GetForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error)

	// Upsert inserts the record or replaces the existing one for the same pair
	// and returns the stored version.
	// Returns domain validation errors if the record is invalid.
	Upsert(ctx context.Context, record *domain.ReviewRecord) (*domain.ReviewRecord, error)

	// ListDue returns the user's words due at now: reviewed words whose next
	// revision has passed, oldest first, followed by never-reviewed words.
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]DueWord, error)

	// CountDue counts reviewed words whose next revision is at or before now.
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)

	// StatusCounts counts stored records per learning status.
	// Statuses without records are absent from the map.
	StatusCounts(ctx context.Context, userID uuid.UUID) (map[domain.LearningStatus]int, error)

	// ReviewedPerDay counts distinct words per day of their last revision.
	ReviewedPerDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyCount, error)

	// MostIncorrect returns the words with the longest incorrect streaks.
	MostIncorrect(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DifficultWord, error)

	// WithTx returns a new ReviewRecordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReviewRecordStore
}
