package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewWord(t *testing.T) {
	userID := uuid.New()

	word, err := NewWord(userID, "  你好 ", "nǐ hǎo", "hello")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if word.ID == uuid.Nil {
		t.Error("Expected a generated ID")
	}
	if word.Text != "你好" {
		t.Errorf("Expected trimmed text, got %q", word.Text)
	}
	if !word.IsOwnedBy(userID) {
		t.Error("Expected word to be owned by its creator")
	}
	if word.IsOwnedBy(uuid.New()) {
		t.Error("Expected word not to be owned by another user")
	}
	if word.CreatedAt.IsZero() || word.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	if _, err := NewWord(uuid.Nil, "你好", "", ""); err != ErrEmptyWordUserID {
		t.Errorf("Expected %v, got %v", ErrEmptyWordUserID, err)
	}
	if _, err := NewWord(userID, "   ", "", ""); err != ErrEmptyWordText {
		t.Errorf("Expected %v, got %v", ErrEmptyWordText, err)
	}
}
