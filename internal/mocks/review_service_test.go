package mocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

func TestMockReviewService(t *testing.T) {
	ctx := context.Background()
	userID, wordID := uuid.New(), uuid.New()
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	record := &domain.ReviewRecord{UserID: userID, WordID: wordID, LearningStatus: domain.LearningStatusRevise}

	t.Run("defaults", func(t *testing.T) {
		m := NewMockReviewService(WithRecord(record))

		got, err := m.SubmitAnswer(ctx, userID, wordID, true, now)
		assert.NoError(t, err)
		assert.Same(t, record, got)
		assert.Equal(t, []SubmittedAnswer{{UserID: userID, WordID: wordID, Correct: true, Now: now}}, m.Submitted())
	})

	t.Run("error and custom function", func(t *testing.T) {
		boom := errors.New("boom")
		m := NewMockReviewService(WithError(boom))
		m.GetRecordFn = func(context.Context, uuid.UUID, uuid.UUID) (*domain.ReviewRecord, error) {
			return record, nil
		}

		_, err := m.ListDue(ctx, userID, now, 7)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []int{7}, m.DueLimits())

		got, err := m.GetRecord(ctx, userID, wordID)
		assert.NoError(t, err)
		assert.Same(t, record, got)
	})
}
