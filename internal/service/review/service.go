package review

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/events"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// Limits of the due-word queue.
const (
	DefaultDueLimit = 20
	MaxDueLimit     = 100
)

// Service is the review use case exposed to the API layer.
type Service interface {
	// SubmitAnswer records whether userID answered wordID correctly at now and
	// returns the updated record.
	//
	// Errors:
	//   - domain.ErrValidation for empty ids
	//   - ErrWordNotFound when the word does not exist
	//   - ErrWordNotOwned when the word belongs to another user
	//   - *PersistenceError when the outcome could not be stored
	SubmitAnswer(ctx context.Context, userID, wordID uuid.UUID, correct bool, now time.Time) (*domain.ReviewRecord, error)

	// GetRecord returns the record of an owned word, or nil when the word
	// has never been reviewed.
	GetRecord(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error)

	// ListDue returns up to limit words due at now. Words never reviewed
	// come after every reviewed word. A limit of 0 selects DefaultDueLimit;
	// larger limits are capped at MaxDueLimit.
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]store.DueWord, error)
}

// WordFinder looks words up by id.
type WordFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

type serviceImpl struct {
	words    WordFinder
	history  HistoryRepository
	recorder *HistoryRecorder
	emitter  events.EventEmitter
	logger   *slog.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates a review Service. emitter may be nil when nothing
// listens to recorded answers.
func NewService(
	words WordFinder,
	history HistoryRepository,
	recorder *HistoryRecorder,
	emitter events.EventEmitter,
	logger *slog.Logger,
) Service {
	if words == nil {
		panic("words cannot be nil")
	}
	if history == nil {
		panic("history cannot be nil")
	}
	if recorder == nil {
		panic("recorder cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceImpl{
		words:    words,
		history:  history,
		recorder: recorder,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "review_service")),
	}
}

func (s *serviceImpl) SubmitAnswer(
	ctx context.Context,
	userID, wordID uuid.UUID,
	correct bool,
	now time.Time,
) (*domain.ReviewRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.checkOwnership(ctx, userID, wordID); err != nil {
		return nil, err
	}

	prior, record, err := s.recorder.record(ctx, userID, wordID, correct, now)
	if err != nil {
		return nil, err
	}

	s.emitRecorded(ctx, prior, record, correct, now)

	log.Info("answer recorded",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
		slog.Bool("correct", correct),
		slog.String("learning_status", record.LearningStatus.String()))
	return record, nil
}

// emitRecorded publishes the answer. The answer is already committed, so a
// failing handler is logged and otherwise ignored.
func (s *serviceImpl) emitRecorded(ctx context.Context, prior, record *domain.ReviewRecord, correct bool, now time.Time) {
	if s.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewReviewRecordedEvent(events.ReviewRecorded{
		UserID:           record.UserID,
		WordID:           record.WordID,
		Correct:          correct,
		FirstReviewOfDay: prior == nil || !domain.Day(prior.LastRevisionAt).Equal(domain.Day(now)),
		Record:           *record,
		AnsweredAt:       now.UTC(),
	})
	if err != nil {
		log.Error("failed to build review event", slog.String("error", err.Error()))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("review event handlers failed",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
	}
}

func (s *serviceImpl) GetRecord(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error) {
	if err := s.checkOwnership(ctx, userID, wordID); err != nil {
		return nil, err
	}

	record, err := s.history.Get(ctx, userID, wordID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load review record",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return nil, service.NewServiceError("review", "get_record", err)
	}
	return record, nil
}

func (s *serviceImpl) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]store.DueWord, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("userID", "cannot be empty", domain.ErrInvalidID)
	}
	switch {
	case limit < 0:
		return nil, domain.NewValidationError("limit", "must not be negative", domain.ErrValidation)
	case limit == 0:
		limit = DefaultDueLimit
	case limit > MaxDueLimit:
		limit = MaxDueLimit
	}

	due, err := s.history.ListDue(ctx, userID, now, limit)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list due words",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, service.NewServiceError("review", "list_due", err)
	}
	return due, nil
}

func (s *serviceImpl) checkOwnership(ctx context.Context, userID, wordID uuid.UUID) error {
	_, err := service.GetOwnedWord(ctx, s.words, userID, wordID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrWordNotFound):
		return ErrWordNotFound
	case errors.Is(err, service.ErrNotOwned):
		logger.FromContextOrDefault(ctx, s.logger).Warn("user does not own word",
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID.String()))
		return ErrWordNotOwned
	default:
		return err
	}
}
