package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the WordStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// Create implements store.WordStore.Create
func (s *PostgresWordStore) Create(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	query := `
		INSERT INTO words (id, user_id, text, pinyin, translation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		word.ID,
		word.UserID,
		word.Text,
		word.Pinyin,
		word.Translation,
		word.CreatedAt,
		word.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("word owner does not exist",
				slog.String("word_id", word.ID.String()),
				slog.String("user_id", word.UserID.String()))
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		if IsUniqueViolation(err) {
			return MapUniqueViolation(err, store.ErrWordExists)
		}

		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return store.NewStoreError("word", "create", "failed to create word", MapError(err))
	}

	log.Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("user_id", word.UserID.String()))
	return nil
}

// GetByID implements store.WordStore.GetByID
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, text, pinyin, translation, created_at, updated_at
		FROM words
		WHERE id = $1
	`

	var word domain.Word
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&word.ID,
		&word.UserID,
		&word.Text,
		&word.Pinyin,
		&word.Translation,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.String("word_id", id.String()))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, store.NewStoreError("word", "get", "failed to get word", MapError(err))
	}

	return &word, nil
}

// Delete implements store.WordStore.Delete
func (s *PostgresWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete word",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return store.NewStoreError("word", "delete", "failed to delete word", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrWordNotFound); err != nil {
		return err
	}

	log.Debug("word deleted", slog.String("word_id", id.String()))
	return nil
}

// CountWithoutRecord implements store.WordStore.CountWithoutRecord
func (s *PostgresWordStore) CountWithoutRecord(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM words w
		LEFT JOIN review_records r ON r.word_id = w.id AND r.user_id = w.user_id
		WHERE w.user_id = $1 AND r.word_id IS NULL
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count unreviewed words",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, store.NewStoreError("word", "count", "failed to count unreviewed words", MapError(err))
	}

	return count, nil
}

// AddedPerDay implements store.WordStore.AddedPerDay
func (s *PostgresWordStore) AddedPerDay(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]domain.DailyCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT (created_at AT TIME ZONE 'UTC')::date AS day, COUNT(*)
		FROM words
		WHERE user_id = $1
			AND created_at >= $2
			AND created_at < $3
		GROUP BY day
		ORDER BY day
	`, userID, domain.Day(from), domain.Day(to).AddDate(0, 0, 1))
	if err != nil {
		log.Error("failed to count added words per day",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("word", "added_per_day", "failed to count added words", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var counts []domain.DailyCount
	for rows.Next() {
		var c domain.DailyCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, store.NewStoreError("word", "added_per_day", "failed to read daily count", MapError(err))
		}
		c.Day = domain.Day(c.Day)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word", "added_per_day", "failed to iterate daily counts", MapError(err))
	}
	return counts, nil
}

// WithTx implements store.WordStore.WithTx
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{
		db:     tx,
		logger: s.logger,
	}
}
