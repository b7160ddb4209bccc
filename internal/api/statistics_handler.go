package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/api/shared"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/statistics"
)

// StatisticsHandler serves the progress dashboard endpoints.
type StatisticsHandler struct {
	stats  statistics.Service
	logger *slog.Logger
	now    func() time.Time
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(stats statistics.Service, logger *slog.Logger) *StatisticsHandler {
	if stats == nil {
		panic("stats cannot be nil for StatisticsHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for StatisticsHandler")
	}
	return &StatisticsHandler{
		stats:  stats,
		logger: logger.With(slog.String("component", "statistics_handler")),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// LearningStatus handles GET /api/statistics/learning-status.
func (h *StatisticsHandler) LearningStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, logger.FromContextOrDefault(r.Context(), h.logger))
	if !ok {
		return
	}

	dist, err := h.stats.LearningStatusDistribution(r.Context(), userID, h.now())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get learning status")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dist)
}

// WordsAdded handles GET /api/statistics/words-added.
func (h *StatisticsHandler) WordsAdded(w http.ResponseWriter, r *http.Request) {
	userID, rng, ok := h.userAndRange(w, r)
	if !ok {
		return
	}

	timeline, err := h.stats.WordsAddedTimeline(r.Context(), userID, rng)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get added words")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, timeline)
}

// WordsReviewed handles GET /api/statistics/words-reviewed.
func (h *StatisticsHandler) WordsReviewed(w http.ResponseWriter, r *http.Request) {
	userID, rng, ok := h.userAndRange(w, r)
	if !ok {
		return
	}

	timeline, err := h.stats.WordsReviewedTimeline(r.Context(), userID, rng)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get reviewed words")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, timeline)
}

// Accuracy handles GET /api/statistics/accuracy.
func (h *StatisticsHandler) Accuracy(w http.ResponseWriter, r *http.Request) {
	userID, rng, ok := h.userAndRange(w, r)
	if !ok {
		return
	}

	timeline, err := h.stats.AccuracyTimeline(r.Context(), userID, rng)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get accuracy")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, timeline)
}

// DifficultWords handles GET /api/statistics/difficult-words.
func (h *StatisticsHandler) DifficultWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, logger.FromContextOrDefault(r.Context(), h.logger))
	if !ok {
		return
	}

	limit, err := queryLimit(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	words, err := h.stats.TopDifficultWords(r.Context(), userID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get difficult words")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, words)
}

// Streak handles GET /api/statistics/streak.
func (h *StatisticsHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, logger.FromContextOrDefault(r.Context(), h.logger))
	if !ok {
		return
	}

	streak, err := h.stats.Streak(r.Context(), userID, h.now())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get streak")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, StreakResponse{
		CurrentStreak: streak.Current,
		LongestStreak: streak.Longest,
	})
}

func (h *StatisticsHandler) userAndRange(w http.ResponseWriter, r *http.Request) (uuid.UUID, statistics.DateRange, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return uuid.Nil, statistics.DateRange{}, false
	}

	from, err := queryDate(r, "start_date")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, statistics.DateRange{}, false
	}
	to, err := queryDate(r, "end_date")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, statistics.DateRange{}, false
	}

	rng, err := statistics.NewDateRange(from, to, h.now())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, statistics.DateRange{}, false
	}
	return userID, rng, true
}
