package review

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/domain/srs"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// Operation names carried by PersistenceError.
const (
	OpLock        = "lock"
	OpLoad        = "load"
	OpSave        = "save"
	OpTransaction = "transaction"
)

// HistoryRecorder applies review outcomes to stored history.
type HistoryRecorder struct {
	history HistoryRepository
	srs     srs.Service
	logger  *slog.Logger
}

// NewHistoryRecorder creates a HistoryRecorder. It panics on nil dependencies.
func NewHistoryRecorder(history HistoryRepository, srsService srs.Service, logger *slog.Logger) *HistoryRecorder {
	if history == nil {
		panic("history cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryRecorder{
		history: history,
		srs:     srsService,
		logger:  logger.With(slog.String("component", "history_recorder")),
	}
}

// RecordOutcome loads the record for (userID, wordID), applies the outcome
// at now and stores the result, all in one transaction. Storage failures are
// returned as *PersistenceError and leave the stored record unchanged.
func (h *HistoryRecorder) RecordOutcome(
	ctx context.Context,
	userID, wordID uuid.UUID,
	correct bool,
	now time.Time,
) (*domain.ReviewRecord, error) {
	_, record, err := h.record(ctx, userID, wordID, correct, now)
	return record, err
}

// record is RecordOutcome that also returns the prior record, nil when the
// word had never been reviewed.
func (h *HistoryRecorder) record(
	ctx context.Context,
	userID, wordID uuid.UUID,
	correct bool,
	now time.Time,
) (prior, record *domain.ReviewRecord, err error) {
	log := logger.FromContextOrDefault(ctx, h.logger).With(
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()))

	fail := func(op string, cause error) error {
		return &PersistenceError{Op: op, UserID: userID, WordID: wordID, Err: cause}
	}

	err = store.RunInTransaction(ctx, h.history.DB(), func(ctx context.Context, tx *sql.Tx) error {
		history := h.history.WithTx(tx)

		if err := history.LockPair(ctx, userID, wordID); err != nil {
			return fail(OpLock, err)
		}

		current, err := history.GetForUpdate(ctx, userID, wordID)
		switch {
		case errors.Is(err, store.ErrReviewRecordNotFound):
			current = nil
		case err != nil:
			return fail(OpLoad, err)
		}

		saved, err := history.Upsert(ctx, h.srs.Process(userID, wordID, current, correct, now))
		if err != nil {
			if errors.Is(err, store.ErrWordNotFound) {
				return ErrWordNotFound
			}
			return fail(OpSave, err)
		}

		prior, record = current, saved
		return nil
	})
	if err != nil {
		var persistErr *PersistenceError
		switch {
		case errors.As(err, &persistErr):
			err = persistErr
		case errors.Is(err, ErrWordNotFound):
			log.Warn("word disappeared while recording outcome")
			return nil, nil, err
		default:
			err = fail(OpTransaction, err)
		}
		log.Error("failed to record review outcome", slog.String("error", err.Error()))
		return nil, nil, err
	}

	log.Debug("review outcome recorded",
		slog.Bool("correct", correct),
		slog.String("learning_status", record.LearningStatus.String()),
		slog.Int("interval_days", record.RevisionIntervalDays),
		slog.Time("next_revision_at", record.NextRevisionAt))
	return prior, record, nil
}
