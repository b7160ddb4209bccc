package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	tests := []struct {
		name         string
		prevInterval int
		consecutive  int
		correct      bool
		want         int
	}{
		{"incorrect resets to configured interval", 24, 0, false, 0},
		{"first correct", 0, 1, true, 1},
		{"first correct ignores previous interval", 24, 1, true, 1},
		{"second correct", 1, 2, true, 3},
		{"third correct doubles", 3, 3, true, 6},
		{"fifth correct doubles", 12, 5, true, 24},
		{"zero previous interval is raised to one", 0, 3, true, 1},
		{"growth is capped", params.MaxIntervalDays, 9, true, params.MaxIntervalDays},
		{"growth just below cap", params.MaxIntervalDays / 2, 9, true, params.MaxIntervalDays},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateNewInterval(tc.prevInterval, tc.consecutive, tc.correct, params)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculateNewInterval_ConfiguredIncorrectInterval(t *testing.T) {
	t.Parallel()
	params := NewParams(ParamsConfig{IncorrectIntervalDays: 1})

	assert.Equal(t, 1, calculateNewInterval(24, 0, false, params))
}

func TestCalculateStatus(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	assert.Equal(t, domain.LearningStatusForgot, calculateStatus(0, false, params))
	assert.Equal(t, domain.LearningStatusRevise, calculateStatus(1, true, params))
	assert.Equal(t, domain.LearningStatusRevise, calculateStatus(4, true, params))
	assert.Equal(t, domain.LearningStatusMastered, calculateStatus(5, true, params))
	assert.Equal(t, domain.LearningStatusMastered, calculateStatus(11, true, params))
}

func TestCalculateNextRecord_DoesNotMutatePrior(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	created := now.AddDate(0, -1, 0)
	prior := &domain.ReviewRecord{
		UserID:                  uuid.New(),
		WordID:                  uuid.New(),
		RevisionIntervalDays:    3,
		ConsecutiveCorrectCount: 2,
		LearningStatus:          domain.LearningStatusRevise,
		LastRevisionAt:          now.AddDate(0, 0, -3),
		NextRevisionAt:          now,
		CreatedAt:               created,
		UpdatedAt:               now.AddDate(0, 0, -3),
	}
	snapshot := *prior

	next := calculateNextRecord(prior.UserID, prior.WordID, prior, false, now, NewDefaultParams())

	assert.Equal(t, snapshot, *prior)
	assert.NotSame(t, prior, next)
	assert.Equal(t, created, next.CreatedAt, "creation time is carried over")
	assert.Equal(t, now, next.UpdatedAt)
}

func TestCalculateNextRecord_NormalizesToUTC(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("CST", 8*60*60)
	now := time.Date(2024, 3, 10, 23, 0, 0, 0, loc)

	next := calculateNextRecord(uuid.New(), uuid.New(), nil, true, now, NewDefaultParams())

	assert.Equal(t, time.UTC, next.LastRevisionAt.Location())
	assert.True(t, next.LastRevisionAt.Equal(now))
	assert.Equal(t, now.UTC().AddDate(0, 0, 1), next.NextRevisionAt)
}
