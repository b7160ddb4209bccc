package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DamVador/Hanyu-VocabTracker/internal/api/shared"
	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/auth"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/review"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	persistence := &review.PersistenceError{
		Op:     review.OpSave,
		UserID: uuid.New(),
		WordID: uuid.New(),
		Err:    errors.New("connection reset"),
	}

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"nil", nil, http.StatusInternalServerError, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, "Token expired"},
		{"wrapped invalid token", fmt.Errorf("validate: %w", auth.ErrInvalidToken), http.StatusUnauthorized, "Invalid token"},
		{"word owned by someone else", review.ErrWordNotOwned, http.StatusForbidden, "You do not own this word"},
		{"unknown word", review.ErrWordNotFound, http.StatusNotFound, "Word not found"},
		{"word store miss", store.ErrWordNotFound, http.StatusNotFound, "Word not found"},
		{"service miss", service.ErrWordNotFound, http.StatusNotFound, "Word not found"},
		{"duplicate word", store.ErrWordExists, http.StatusConflict, "Word already exists"},
		{
			"field validation",
			domain.NewValidationError("limit", "must not be negative", domain.ErrValidation),
			http.StatusBadRequest,
			"Invalid limit: must not be negative",
		},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest, "Invalid request"},
		{"persistence failure", persistence, http.StatusInternalServerError, "Could not record your answer, please retry"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.expectedMessage, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(&SubmitAnswerRequest{})
	assert.Equal(t, "Invalid correct: required field", SanitizeValidationError(err))

	err = shared.ValidateRequest(&CreateWordRequest{Text: strings.Repeat("字", 65)})
	assert.Equal(t, "Invalid text: too long", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("fallback replaces generic server message", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleAPIError(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"), "Failed to list due words")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to list due words"}`, w.Body.String())
	})

	t.Run("known errors keep their message", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleAPIError(w, httptest.NewRequest(http.MethodGet, "/", nil), review.ErrWordNotFound, "Failed")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Word not found"}`, w.Body.String())
	})
}
