package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/events"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
)

// AnswerCounter is the snapshot storage the recorder writes to.
type AnswerCounter interface {
	IncrementAnswers(ctx context.Context, userID uuid.UUID, day time.Time, correct, wordReviewed bool) error
}

// SnapshotRecorder keeps the answer counters of today's snapshot current.
// Subscribe it to events.ReviewRecordedType.
type SnapshotRecorder struct {
	counter AnswerCounter
	logger  *slog.Logger
}

var _ events.EventHandler = (*SnapshotRecorder)(nil)

// NewSnapshotRecorder creates a SnapshotRecorder.
func NewSnapshotRecorder(counter AnswerCounter, logger *slog.Logger) *SnapshotRecorder {
	if counter == nil {
		panic("counter cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotRecorder{
		counter: counter,
		logger:  logger.With(slog.String("component", "snapshot_recorder")),
	}
}

// HandleEvent counts one answer. Events of other types are ignored.
func (r *SnapshotRecorder) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.ReviewRecordedType {
		return nil
	}

	var payload events.ReviewRecorded
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("decode %s event %s: %w", event.Type, event.ID, err)
	}

	err := r.counter.IncrementAnswers(ctx, payload.UserID, payload.AnsweredAt, payload.Correct, payload.FirstReviewOfDay)
	if err != nil {
		return fmt.Errorf("count answer: %w", err)
	}

	logger.FromContextOrDefault(ctx, r.logger).Debug("answer counted",
		slog.String("user_id", payload.UserID.String()),
		slog.Bool("correct", payload.Correct))
	return nil
}
