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

const reviewRecordColumns = `user_id, word_id, revision_interval_days, consecutive_correct_count,
		total_incorrect_count, learning_status, last_revision_at, next_revision_at,
		created_at, updated_at`

// PostgresReviewRecordStore implements the store.ReviewRecordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewRecordStore creates a new PostgreSQL implementation of the ReviewRecordStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresReviewRecordStore(db store.DBTX, logger *slog.Logger) *PostgresReviewRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewRecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_record_store")),
	}
}

// Ensure PostgresReviewRecordStore implements store.ReviewRecordStore interface
var _ store.ReviewRecordStore = (*PostgresReviewRecordStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReviewRecord(row rowScanner) (*domain.ReviewRecord, error) {
	var r domain.ReviewRecord
	var status string
	if err := row.Scan(
		&r.UserID,
		&r.WordID,
		&r.RevisionIntervalDays,
		&r.ConsecutiveCorrectCount,
		&r.TotalIncorrectCount,
		&status,
		&r.LastRevisionAt,
		&r.NextRevisionAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := domain.ParseLearningStatus(status)
	if err != nil {
		return nil, err
	}
	r.LearningStatus = parsed
	normalizeRecordTimes(&r)
	return &r, nil
}

func normalizeRecordTimes(r *domain.ReviewRecord) {
	r.LastRevisionAt = r.LastRevisionAt.UTC()
	r.NextRevisionAt = r.NextRevisionAt.UTC()
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
}

// Get implements store.ReviewRecordStore.Get
func (s *PostgresReviewRecordStore) Get(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.ReviewRecord, error) {
	return s.get(ctx, userID, wordID, false)
}

// GetForUpdate implements store.ReviewRecordStore.GetForUpdate
func (s *PostgresReviewRecordStore) GetForUpdate(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.ReviewRecord, error) {
	return s.get(ctx, userID, wordID, true)
}

func (s *PostgresReviewRecordStore) get(
	ctx context.Context,
	userID, wordID uuid.UUID,
	forUpdate bool,
) (*domain.ReviewRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + reviewRecordColumns + `
		FROM review_records
		WHERE user_id = $1 AND word_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	record, err := scanReviewRecord(s.db.QueryRowContext(ctx, query, userID, wordID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("review record not found",
				slog.String("user_id", userID.String()),
				slog.String("word_id", wordID.String()))
			return nil, store.ErrReviewRecordNotFound
		}
		log.Error("failed to get review record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID.String()),
			slog.Bool("for_update", forUpdate))
		return nil, store.NewStoreError("review_record", "get", "failed to get review record", MapError(err))
	}

	return record, nil
}

// LockPair implements store.ReviewRecordStore.LockPair
// The lock is a transaction-scoped advisory lock, released on commit or rollback.
func (s *PostgresReviewRecordStore) LockPair(ctx context.Context, userID, wordID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	key := userID.String() + ":" + wordID.String()
	if _, err := s.db.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		log.Error("failed to lock review pair",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID.String()))
		return store.NewStoreError("review_record", "lock", "failed to lock review pair", MapError(err))
	}
	return nil
}

// Upsert implements store.ReviewRecordStore.Upsert
func (s *PostgresReviewRecordStore) Upsert(
	ctx context.Context,
	record *domain.ReviewRecord,
) (*domain.ReviewRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("review record validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID.String()),
			slog.String("word_id", record.WordID.String()))
		return nil, err
	}

	query := `
		INSERT INTO review_records (` + reviewRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, word_id) DO UPDATE SET
			revision_interval_days = EXCLUDED.revision_interval_days,
			consecutive_correct_count = EXCLUDED.consecutive_correct_count,
			total_incorrect_count = EXCLUDED.total_incorrect_count,
			learning_status = EXCLUDED.learning_status,
			last_revision_at = EXCLUDED.last_revision_at,
			next_revision_at = EXCLUDED.next_revision_at,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + reviewRecordColumns

	stored, err := scanReviewRecord(s.db.QueryRowContext(ctx, query,
		record.UserID,
		record.WordID,
		record.RevisionIntervalDays,
		record.ConsecutiveCorrectCount,
		record.TotalIncorrectCount,
		record.LearningStatus.String(),
		record.LastRevisionAt,
		record.NextRevisionAt,
		record.CreatedAt,
		record.UpdatedAt,
	))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("review record references a missing user or word",
				slog.String("user_id", record.UserID.String()),
				slog.String("word_id", record.WordID.String()))
			return nil, fmt.Errorf("%w: %v", store.ErrWordNotFound, err)
		}
		log.Error("failed to upsert review record",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID.String()),
			slog.String("word_id", record.WordID.String()))
		return nil, store.NewStoreError("review_record", "upsert", "failed to save review record", MapError(err))
	}

	log.Debug("review record saved",
		slog.String("user_id", stored.UserID.String()),
		slog.String("word_id", stored.WordID.String()),
		slog.String("learning_status", stored.LearningStatus.String()),
		slog.Int("interval_days", stored.RevisionIntervalDays))
	return stored, nil
}

// ListDue implements store.ReviewRecordStore.ListDue
func (s *PostgresReviewRecordStore) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]store.DueWord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT w.id, w.user_id, w.text, w.pinyin, w.translation, w.created_at, w.updated_at,
			r.revision_interval_days, r.consecutive_correct_count, r.total_incorrect_count,
			r.learning_status, r.last_revision_at, r.next_revision_at, r.created_at, r.updated_at
		FROM words w
		LEFT JOIN review_records r ON r.word_id = w.id AND r.user_id = w.user_id
		WHERE w.user_id = $1 AND (r.word_id IS NULL OR r.next_revision_at <= $2)
		ORDER BY (r.word_id IS NULL), r.next_revision_at, w.created_at, w.id
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, now.UTC(), limit)
	if err != nil {
		log.Error("failed to list due words",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("review_record", "list_due", "failed to list due words", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	due := make([]store.DueWord, 0, limit)
	for rows.Next() {
		var (
			word                              domain.Word
			interval, consecutive, incorrect  sql.NullInt64
			status                            sql.NullString
			last, next, recCreated, recUpdate sql.NullTime
		)
		if err := rows.Scan(
			&word.ID, &word.UserID, &word.Text, &word.Pinyin, &word.Translation,
			&word.CreatedAt, &word.UpdatedAt,
			&interval, &consecutive, &incorrect,
			&status, &last, &next, &recCreated, &recUpdate,
		); err != nil {
			log.Error("failed to scan due word",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, store.NewStoreError("review_record", "list_due", "failed to read due word", MapError(err))
		}

		item := store.DueWord{Word: &word}
		if status.Valid {
			parsed, err := domain.ParseLearningStatus(status.String)
			if err != nil {
				return nil, store.NewStoreError("review_record", "list_due", "stored status is invalid", err)
			}
			record := &domain.ReviewRecord{
				UserID:                  word.UserID,
				WordID:                  word.ID,
				RevisionIntervalDays:    int(interval.Int64),
				ConsecutiveCorrectCount: int(consecutive.Int64),
				TotalIncorrectCount:     int(incorrect.Int64),
				LearningStatus:          parsed,
				LastRevisionAt:          last.Time,
				NextRevisionAt:          next.Time,
				CreatedAt:               recCreated.Time,
				UpdatedAt:               recUpdate.Time,
			}
			normalizeRecordTimes(record)
			item.Record = record
		}
		due = append(due, item)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("review_record", "list_due", "failed to iterate due words", MapError(err))
	}

	return due, nil
}

// CountDue implements store.ReviewRecordStore.CountDue
func (s *PostgresReviewRecordStore) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM review_records WHERE user_id = $1 AND next_revision_at <= $2`,
		userID, now.UTC(),
	).Scan(&count)
	if err != nil {
		log.Error("failed to count due records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, store.NewStoreError("review_record", "count_due", "failed to count due words", MapError(err))
	}
	return count, nil
}

// StatusCounts implements store.ReviewRecordStore.StatusCounts
func (s *PostgresReviewRecordStore) StatusCounts(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.LearningStatus]int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT learning_status, COUNT(*)
		FROM review_records
		WHERE user_id = $1
		GROUP BY learning_status
	`, userID)
	if err != nil {
		log.Error("failed to count statuses",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("review_record", "status_counts", "failed to count statuses", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[domain.LearningStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, store.NewStoreError("review_record", "status_counts", "failed to read status count", MapError(err))
		}
		parsed, err := domain.ParseLearningStatus(status)
		if err != nil {
			return nil, store.NewStoreError("review_record", "status_counts", "stored status is invalid", err)
		}
		counts[parsed] = count
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("review_record", "status_counts", "failed to iterate status counts", MapError(err))
	}

	return counts, nil
}

// ReviewedPerDay implements store.ReviewRecordStore.ReviewedPerDay
func (s *PostgresReviewRecordStore) ReviewedPerDay(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]domain.DailyCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT (last_revision_at AT TIME ZONE 'UTC')::date AS day, COUNT(DISTINCT word_id)
		FROM review_records
		WHERE user_id = $1
			AND last_revision_at >= $2
			AND last_revision_at < $3
		GROUP BY day
		ORDER BY day
	`, userID, domain.Day(from), domain.Day(to).AddDate(0, 0, 1))
	if err != nil {
		log.Error("failed to count reviewed words per day",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("review_record", "reviewed_per_day", "failed to count reviewed words", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var counts []domain.DailyCount
	for rows.Next() {
		var c domain.DailyCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, store.NewStoreError("review_record", "reviewed_per_day", "failed to read daily count", MapError(err))
		}
		c.Day = domain.Day(c.Day)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("review_record", "reviewed_per_day", "failed to iterate daily counts", MapError(err))
	}

	return counts, nil
}

// MostIncorrect implements store.ReviewRecordStore.MostIncorrect
func (s *PostgresReviewRecordStore) MostIncorrect(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.DifficultWord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.text, w.pinyin, w.translation, r.total_incorrect_count, r.learning_status
		FROM review_records r
		JOIN words w ON w.id = r.word_id
		WHERE r.user_id = $1 AND r.total_incorrect_count > 0
		ORDER BY r.total_incorrect_count DESC, r.last_revision_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		log.Error("failed to list difficult words",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("review_record", "most_incorrect", "failed to list difficult words", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var words []domain.DifficultWord
	for rows.Next() {
		var w domain.DifficultWord
		var status string
		if err := rows.Scan(&w.WordID, &w.Text, &w.Pinyin, &w.Translation, &w.IncorrectCount, &status); err != nil {
			return nil, store.NewStoreError("review_record", "most_incorrect", "failed to read difficult word", MapError(err))
		}
		parsed, err := domain.ParseLearningStatus(status)
		if err != nil {
			return nil, store.NewStoreError("review_record", "most_incorrect", "stored status is invalid", err)
		}
		w.LearningStatus = parsed
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("review_record", "most_incorrect", "failed to iterate difficult words", MapError(err))
	}

	return words, nil
}

// WithTx implements store.ReviewRecordStore.WithTx
func (s *PostgresReviewRecordStore) WithTx(tx *sql.Tx) store.ReviewRecordStore {
	return &PostgresReviewRecordStore{
		db:     tx,
		logger: s.logger,
	}
}
