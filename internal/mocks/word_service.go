package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
)

// MockWordService implements service.WordService for testing.
type MockWordService struct {
	CreateWordFn func(ctx context.Context, userID uuid.UUID, input service.CreateWordInput) (*domain.Word, error)
	GetWordFn    func(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	DeleteWordFn func(ctx context.Context, userID, wordID uuid.UUID) error

	Word *domain.Word
	Err  error
}

var _ service.WordService = (*MockWordService)(nil)

// CreateWord implements service.WordService.
func (m *MockWordService) CreateWord(
	ctx context.Context,
	userID uuid.UUID,
	input service.CreateWordInput,
) (*domain.Word, error) {
	if m.CreateWordFn != nil {
		return m.CreateWordFn(ctx, userID, input)
	}
	return m.Word, m.Err
}

// GetWord implements service.WordService.
func (m *MockWordService) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	if m.GetWordFn != nil {
		return m.GetWordFn(ctx, userID, wordID)
	}
	return m.Word, m.Err
}

// DeleteWord implements service.WordService.
func (m *MockWordService) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	if m.DeleteWordFn != nil {
		return m.DeleteWordFn(ctx, userID, wordID)
	}
	return m.Err
}
