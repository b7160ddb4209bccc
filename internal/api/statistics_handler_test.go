package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/mocks"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/statistics"
)

func newStatisticsHandler(svc statistics.Service) *StatisticsHandler {
	h := NewStatisticsHandler(svc, quietLogger())
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestStatisticsHandler_LearningStatus(t *testing.T) {
	userID := uuid.New()
	svc := &mocks.MockStatisticsService{
		DistributionFn: func(_ context.Context, id uuid.UUID, now time.Time) (domain.StatusDistribution, error) {
			assert.Equal(t, userID, id)
			assert.Equal(t, fixedNow, now)
			return domain.StatusDistribution{New: 4, Revise: 2, Forgot: 1, Mastered: 3, Due: 2}, nil
		},
	}
	w := httptest.NewRecorder()

	newStatisticsHandler(svc).LearningStatus(w, newRequest(http.MethodGet, "/", "", userID, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"new":4,"revise":2,"forgot":1,"mastered":3,"due":2}`, w.Body.String())
}

func TestStatisticsHandler_DateRanges(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantFrom   time.Time
		wantTo     time.Time
	}{
		{
			name:       "defaults to six months",
			wantStatus: http.StatusOK,
			wantFrom:   time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC),
			wantTo:     time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "explicit range",
			query:      "?start_date=2024-03-01&end_date=2024-03-31",
			wantStatus: http.StatusOK,
			wantFrom:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantTo:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{name: "bad date", query: "?start_date=03/01/2024", wantStatus: http.StatusBadRequest},
		{name: "reversed range", query: "?start_date=2024-04-01&end_date=2024-03-01", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got statistics.DateRange
			calls := 0
			svc := &mocks.MockStatisticsService{
				ReviewedFn: func(_ context.Context, _ uuid.UUID, r statistics.DateRange) ([]domain.DailyCount, error) {
					got = r
					calls++
					return []domain.DailyCount{{Day: r.From, Count: 2}}, nil
				},
				AccuracyFn: func(_ context.Context, _ uuid.UUID, r statistics.DateRange) ([]domain.DailyAccuracy, error) {
					assert.Equal(t, got, r)
					calls++
					return nil, nil
				},
			}
			h := newStatisticsHandler(svc)

			w := httptest.NewRecorder()
			h.WordsReviewed(w, newRequest(http.MethodGet, "/api/statistics/words-reviewed"+tc.query, "", userID, ""))
			assert.Equal(t, tc.wantStatus, w.Code)

			w = httptest.NewRecorder()
			h.Accuracy(w, newRequest(http.MethodGet, "/api/statistics/accuracy"+tc.query, "", userID, ""))
			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus != http.StatusOK {
				assert.Zero(t, calls)
				return
			}
			assert.Equal(t, 2, calls)
			assert.Equal(t, tc.wantFrom, got.From)
			assert.Equal(t, tc.wantTo, got.To)
		})
	}
}

func TestStatisticsHandler_WordsAdded(t *testing.T) {
	userID := uuid.New()
	var got statistics.DateRange
	svc := &mocks.MockStatisticsService{
		AddedFn: func(_ context.Context, _ uuid.UUID, r statistics.DateRange) ([]domain.DailyCount, error) {
			got = r
			return []domain.DailyCount{{Day: r.From, Count: 4}}, nil
		},
	}
	h := newStatisticsHandler(svc)

	w := httptest.NewRecorder()
	h.WordsAdded(w, newRequest(http.MethodGet, "/api/statistics/words-added?start_date=2024-03-01&end_date=2024-03-31", "", userID, ""))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.From)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), got.To)

	var counts []domain.DailyCount
	require.NoError(t, json.NewDecoder(w.Body).Decode(&counts))
	require.Len(t, counts, 1)
	assert.Equal(t, 4, counts[0].Count)

	failing := newStatisticsHandler(&mocks.MockStatisticsService{Err: errors.New("connection reset")})
	w = httptest.NewRecorder()
	failing.WordsAdded(w, newRequest(http.MethodGet, "/api/statistics/words-added", "", userID, ""))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatisticsHandler_DifficultWords(t *testing.T) {
	userID := uuid.New()
	var limits []int
	svc := &mocks.MockStatisticsService{
		DifficultWordsFn: func(_ context.Context, _ uuid.UUID, limit int) ([]domain.DifficultWord, error) {
			limits = append(limits, limit)
			return []domain.DifficultWord{{
				WordID:         uuid.New(),
				Text:           "难",
				IncorrectCount: 4,
				LearningStatus: domain.LearningStatusForgot,
			}}, nil
		},
	}
	h := newStatisticsHandler(svc)

	w := httptest.NewRecorder()
	h.DifficultWords(w, newRequest(http.MethodGet, "/api/statistics/difficult-words?limit=3", "", userID, ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.DifficultWord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].IncorrectCount)
	assert.Equal(t, domain.LearningStatusForgot, got[0].LearningStatus)

	w = httptest.NewRecorder()
	h.DifficultWords(w, newRequest(http.MethodGet, "/api/statistics/difficult-words?limit=-3", "", userID, ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, []int{3}, limits)
}

func TestStatisticsHandler_Streak(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &mocks.MockStatisticsService{
			StreakFn: func(context.Context, uuid.UUID, time.Time) (domain.Streak, error) {
				return domain.Streak{Current: 3, Longest: 9}, nil
			},
		}
		w := httptest.NewRecorder()
		newStatisticsHandler(svc).Streak(w, newRequest(http.MethodGet, "/", "", uuid.New(), ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"current_streak":3,"longest_streak":9}`, w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		svc := &mocks.MockStatisticsService{Err: errors.New("db down")}
		w := httptest.NewRecorder()
		newStatisticsHandler(svc).Streak(w, newRequest(http.MethodGet, "/", "", uuid.New(), ""))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to get streak"}`, w.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		newStatisticsHandler(&mocks.MockStatisticsService{}).Streak(w, newRequest(http.MethodGet, "/", "", uuid.Nil, ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
