package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

// WordStore defines the interface for word data persistence.
type WordStore interface {
	// Create saves a new word.
	// Returns validation errors from the domain Word if data is invalid.
	// Returns ErrUserNotFound if the owner does not exist.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID regardless of owner.
	// Ownership is checked by the caller.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// Delete removes a word and, by cascade, its review record.
	// Returns ErrWordNotFound if the word does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountWithoutRecord counts the user's words that have never been reviewed.
	CountWithoutRecord(ctx context.Context, userID uuid.UUID) (int, error)

	// AddedPerDay counts the user's words by UTC creation day over the
	// inclusive range of days [from, to]. Days without words are omitted.
	AddedPerDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyCount, error)

	// WithTx returns a new WordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WordStore
}
