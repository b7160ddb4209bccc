package api

import (
	"log/slog"
	"net/http"

	"github.com/DamVador/Hanyu-VocabTracker/internal/api/shared"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/redact"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
)

// WordHandler serves the vocabulary endpoints used to set up reviews.
type WordHandler struct {
	words  service.WordService
	logger *slog.Logger
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(words service.WordService, logger *slog.Logger) *WordHandler {
	if words == nil {
		panic("words cannot be nil for WordHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for WordHandler")
	}
	return &WordHandler{
		words:  words,
		logger: logger.With(slog.String("component", "word_handler")),
	}
}

// CreateWord handles POST /api/words.
func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req CreateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	word, err := h.words.CreateWord(r.Context(), userID, service.CreateWordInput{
		Text:        req.Text,
		Pinyin:      req.Pinyin,
		Translation: req.Translation,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create word")
		return
	}

	log.Debug("word created", slog.String("word_id", word.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, wordToResponse(word))
}

// GetWord handles GET /api/words/{id}.
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, wordID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	word, err := h.words.GetWord(r.Context(), userID, wordID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get word")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// DeleteWord handles DELETE /api/words/{id}. The review record goes with it.
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, wordID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.words.DeleteWord(r.Context(), userID, wordID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete word")
		return
	}

	log.Debug("word deleted", slog.String("word_id", wordID.String()))
	w.WriteHeader(http.StatusNoContent)
}
