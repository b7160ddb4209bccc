package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Word
var (
	ErrEmptyWordID     = errors.New("word ID cannot be empty")
	ErrEmptyWordUserID = errors.New("word user ID cannot be empty")
	ErrEmptyWordText   = errors.New("word text cannot be empty")
)

// Word is a vocabulary entry owned by a single user.
type Word struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Text        string    `json:"text"`
	Pinyin      string    `json:"pinyin"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewWord creates a new Word owned by userID.
func NewWord(userID uuid.UUID, text, pinyin, translation string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:          uuid.New(),
		UserID:      userID,
		Text:        strings.TrimSpace(text),
		Pinyin:      strings.TrimSpace(pinyin),
		Translation: strings.TrimSpace(translation),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrEmptyWordID
	}

	if w.UserID == uuid.Nil {
		return ErrEmptyWordUserID
	}

	if strings.TrimSpace(w.Text) == "" {
		return ErrEmptyWordText
	}

	return nil
}

// IsOwnedBy reports whether the word belongs to userID.
func (w *Word) IsOwnedBy(userID uuid.UUID) bool {
	return w.UserID == userID
}
