package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

const snapshotColumns = `id, user_id, snapshot_date, words_reviewed, correct_answers, incorrect_answers,
		new_words, revise_words, forgot_words, mastered_words, created_at, updated_at`

// PostgresStatisticsStore implements the store.StatisticsStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStatisticsStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewPostgresStatisticsStore creates a new PostgreSQL implementation of the StatisticsStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStatisticsStore(db store.DBTX, logger *slog.Logger) *PostgresStatisticsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatisticsStore{
		db:     db,
		logger: logger.With(slog.String("component", "statistics_store")),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Ensure PostgresStatisticsStore implements store.StatisticsStore interface
var _ store.StatisticsStore = (*PostgresStatisticsStore)(nil)

// IncrementAnswers implements store.StatisticsStore.IncrementAnswers
func (s *PostgresStatisticsStore) IncrementAnswers(
	ctx context.Context,
	userID uuid.UUID,
	day time.Time,
	correct, wordReviewed bool,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	correctInc, incorrectInc, reviewedInc := 0, 1, 0
	if correct {
		correctInc, incorrectInc = 1, 0
	}
	if wordReviewed {
		reviewedInc = 1
	}

	now := s.now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO statistics_snapshots
			(user_id, snapshot_date, words_reviewed, correct_answers, incorrect_answers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id, snapshot_date) DO UPDATE SET
			words_reviewed = statistics_snapshots.words_reviewed + EXCLUDED.words_reviewed,
			correct_answers = statistics_snapshots.correct_answers + EXCLUDED.correct_answers,
			incorrect_answers = statistics_snapshots.incorrect_answers + EXCLUDED.incorrect_answers,
			updated_at = EXCLUDED.updated_at
	`, userID, domain.Day(day), reviewedInc, correctInc, incorrectInc, now)
	if err != nil {
		log.Error("failed to increment answer counters",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return store.NewStoreError("statistics_snapshot", "increment", "failed to increment answers", MapError(err))
	}
	return nil
}

// SaveDistribution implements store.StatisticsStore.SaveDistribution
func (s *PostgresStatisticsStore) SaveDistribution(
	ctx context.Context,
	userID uuid.UUID,
	day time.Time,
	dist domain.StatusDistribution,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := s.now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO statistics_snapshots
			(user_id, snapshot_date, new_words, revise_words, forgot_words, mastered_words, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id, snapshot_date) DO UPDATE SET
			new_words = EXCLUDED.new_words,
			revise_words = EXCLUDED.revise_words,
			forgot_words = EXCLUDED.forgot_words,
			mastered_words = EXCLUDED.mastered_words,
			updated_at = EXCLUDED.updated_at
	`, userID, domain.Day(day), dist.New, dist.Revise, dist.Forgot, dist.Mastered, now)
	if err != nil {
		log.Error("failed to save status distribution",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return store.NewStoreError("statistics_snapshot", "save_distribution", "failed to save distribution", MapError(err))
	}
	return nil
}

func scanSnapshot(row rowScanner) (*domain.StatisticsSnapshot, error) {
	var snap domain.StatisticsSnapshot
	if err := row.Scan(
		&snap.ID,
		&snap.UserID,
		&snap.SnapshotDate,
		&snap.WordsReviewed,
		&snap.CorrectAnswers,
		&snap.IncorrectAnswers,
		&snap.NewWords,
		&snap.ReviseWords,
		&snap.ForgotWords,
		&snap.MasteredWords,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	); err != nil {
		return nil, err
	}
	snap.SnapshotDate = domain.Day(snap.SnapshotDate)
	return &snap, nil
}

// Get implements store.StatisticsStore.Get
func (s *PostgresStatisticsStore) Get(
	ctx context.Context,
	userID uuid.UUID,
	day time.Time,
) (*domain.StatisticsSnapshot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM statistics_snapshots WHERE user_id = $1 AND snapshot_date = $2`,
		userID, domain.Day(day),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSnapshotNotFound
		}
		log.Error("failed to get snapshot",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("statistics_snapshot", "get", "failed to get snapshot", MapError(err))
	}
	return snap, nil
}

// ListRange implements store.StatisticsStore.ListRange
func (s *PostgresStatisticsStore) ListRange(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]domain.StatisticsSnapshot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+snapshotColumns+`
		FROM statistics_snapshots
		WHERE user_id = $1 AND snapshot_date BETWEEN $2 AND $3
		ORDER BY snapshot_date
	`, userID, domain.Day(from), domain.Day(to))
	if err != nil {
		log.Error("failed to list snapshots",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("statistics_snapshot", "list", "failed to list snapshots", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var snaps []domain.StatisticsSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, store.NewStoreError("statistics_snapshot", "list", "failed to read snapshot", MapError(err))
		}
		snaps = append(snaps, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("statistics_snapshot", "list", "failed to iterate snapshots", MapError(err))
	}
	return snaps, nil
}

// ActiveDays implements store.StatisticsStore.ActiveDays
func (s *PostgresStatisticsStore) ActiveDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT snapshot_date
		FROM statistics_snapshots
		WHERE user_id = $1 AND (correct_answers + incorrect_answers) > 0
		ORDER BY snapshot_date DESC
	`, userID)
	if err != nil {
		log.Error("failed to list active days",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("statistics_snapshot", "active_days", "failed to list active days", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, store.NewStoreError("statistics_snapshot", "active_days", "failed to read day", MapError(err))
		}
		days = append(days, domain.Day(day))
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("statistics_snapshot", "active_days", "failed to iterate days", MapError(err))
	}
	return days, nil
}

// UsersWithWords implements store.StatisticsStore.UsersWithWords
func (s *PostgresStatisticsStore) UsersWithWords(ctx context.Context) ([]uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM words ORDER BY user_id`)
	if err != nil {
		log.Error("failed to list users with words", slog.String("error", err.Error()))
		return nil, store.NewStoreError("statistics_snapshot", "users", "failed to list users", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, store.NewStoreError("statistics_snapshot", "users", "failed to read user id", MapError(err))
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("statistics_snapshot", "users", "failed to iterate users", MapError(err))
	}
	return ids, nil
}

// WithTx implements store.StatisticsStore.WithTx
func (s *PostgresStatisticsStore) WithTx(tx *sql.Tx) store.StatisticsStore {
	return &PostgresStatisticsStore{
		db:     tx,
		logger: s.logger,
		now:    s.now,
	}
}
