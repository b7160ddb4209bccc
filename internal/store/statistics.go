package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

// StatisticsStore defines the interface for daily statistics snapshots.
// There is at most one snapshot per (user, day).
type StatisticsStore interface {
	// IncrementAnswers adds one answer to the (user, day) snapshot, creating it
	// when missing. wordReviewed increments WordsReviewed as well.
	IncrementAnswers(ctx context.Context, userID uuid.UUID, day time.Time, correct, wordReviewed bool) error

	// SaveDistribution stores the status distribution for the (user, day)
	// snapshot, creating it when missing. Answer counters are left untouched.
	SaveDistribution(ctx context.Context, userID uuid.UUID, day time.Time, dist domain.StatusDistribution) error

	// Get retrieves the snapshot for a (user, day) pair.
	// Returns ErrSnapshotNotFound if none exists.
	Get(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.StatisticsSnapshot, error)

	// ListRange returns the user's snapshots with from <= day <= to, ordered by day.
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StatisticsSnapshot, error)

	// ActiveDays returns, newest first, the days on which the user answered at least once.
	ActiveDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error)

	// UsersWithWords returns the IDs of every user that owns at least one word.
	UsersWithWords(ctx context.Context) ([]uuid.UUID, error)

	// WithTx returns a new StatisticsStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StatisticsStore
}
