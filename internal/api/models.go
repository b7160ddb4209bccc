package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// SubmitAnswerRequest is the body of POST /api/words/{id}/review.
type SubmitAnswerRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// CreateWordRequest is the body of POST /api/words.
type CreateWordRequest struct {
	Text        string `json:"text"        validate:"required,max=64"`
	Pinyin      string `json:"pinyin"      validate:"max=128"`
	Translation string `json:"translation" validate:"max=512"`
}

// WordResponse is the wire form of a word.
type WordResponse struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	Pinyin      string    `json:"pinyin"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewRecordResponse is the wire form of a review record. A word that
// was never reviewed has status New and no timestamps.
type ReviewRecordResponse struct {
	WordID                  uuid.UUID             `json:"word_id"`
	LearningStatus          domain.LearningStatus `json:"learning_status"`
	RevisionIntervalDays    int                   `json:"revision_interval_days"`
	ConsecutiveCorrectCount int                   `json:"consecutive_correct_count"`
	TotalIncorrectCount     int                   `json:"total_incorrect_count"`
	LastRevisionAt          *time.Time            `json:"last_revision_at,omitempty"`
	NextRevisionAt          *time.Time            `json:"next_revision_at,omitempty"`
}

// DueWordResponse is one entry of the due queue.
type DueWordResponse struct {
	Word   WordResponse         `json:"word"`
	Review ReviewRecordResponse `json:"review"`
}

// StreakResponse reports study streaks in days.
type StreakResponse struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

func wordToResponse(w *domain.Word) WordResponse {
	return WordResponse{
		ID:          w.ID,
		Text:        w.Text,
		Pinyin:      w.Pinyin,
		Translation: w.Translation,
		CreatedAt:   w.CreatedAt,
	}
}

func recordToResponse(wordID uuid.UUID, rec *domain.ReviewRecord) ReviewRecordResponse {
	if rec == nil {
		return ReviewRecordResponse{WordID: wordID, LearningStatus: domain.LearningStatusNew}
	}
	last, next := rec.LastRevisionAt, rec.NextRevisionAt
	return ReviewRecordResponse{
		WordID:                  rec.WordID,
		LearningStatus:          rec.LearningStatus,
		RevisionIntervalDays:    rec.RevisionIntervalDays,
		ConsecutiveCorrectCount: rec.ConsecutiveCorrectCount,
		TotalIncorrectCount:     rec.TotalIncorrectCount,
		LastRevisionAt:          &last,
		NextRevisionAt:          &next,
	}
}

func dueToResponse(items []store.DueWord) []DueWordResponse {
	out := make([]DueWordResponse, 0, len(items))
	for _, item := range items {
		out = append(out, DueWordResponse{
			Word:   wordToResponse(item.Word),
			Review: recordToResponse(item.Word.ID, item.Record),
		})
	}
	return out
}
