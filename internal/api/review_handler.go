package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DamVador/Hanyu-VocabTracker/internal/api/shared"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/redact"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/review"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	reviews review.Service
	logger  *slog.Logger
	now     func() time.Time
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews review.Service, logger *slog.Logger) *ReviewHandler {
	if reviews == nil {
		panic("reviews cannot be nil for ReviewHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for ReviewHandler")
	}
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger.With(slog.String("component", "review_handler")),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SubmitAnswer handles POST /api/words/{id}/review.
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, wordID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	record, err := h.reviews.SubmitAnswer(r.Context(), userID, wordID, *req.Correct, h.now())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record answer")
		return
	}

	log.Debug("answer recorded",
		slog.String("word_id", wordID.String()),
		slog.String("learning_status", record.LearningStatus.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(wordID, record))
}

// GetReview handles GET /api/words/{id}/review.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, wordID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	record, err := h.reviews.GetRecord(r.Context(), userID, wordID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(wordID, record))
}

// ListDue handles GET /api/reviews/due.
func (h *ReviewHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	limit, err := queryLimit(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, err := h.reviews.ListDue(r.Context(), userID, h.now(), limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list due words")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dueToResponse(items))
}
