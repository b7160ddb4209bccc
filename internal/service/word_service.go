package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// CreateWordInput carries the fields of a new word.
type CreateWordInput struct {
	Text        string
	Pinyin      string
	Translation string
}

// WordService manages the words a user studies.
type WordService interface {
	// CreateWord adds a word for userID. The user row is created on first use,
	// since accounts live in an external identity service.
	CreateWord(ctx context.Context, userID uuid.UUID, input CreateWordInput) (*domain.Word, error)

	// GetWord returns a word owned by userID.
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)

	// DeleteWord removes a word owned by userID together with its review record.
	DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error
}

type wordServiceImpl struct {
	wordRepo WordRepository
	userRepo UserRepository
	logger   *slog.Logger
}

var _ WordService = (*wordServiceImpl)(nil)

// NewWordService creates a WordService.
// It returns an error if any of the required dependencies are nil.
func NewWordService(wordRepo WordRepository, userRepo UserRepository, logger *slog.Logger) (WordService, error) {
	if wordRepo == nil {
		return nil, domain.NewValidationError("wordRepo", "cannot be nil", domain.ErrValidation)
	}
	if userRepo == nil {
		return nil, domain.NewValidationError("userRepo", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &wordServiceImpl{
		wordRepo: wordRepo,
		userRepo: userRepo,
		logger:   logger.With(slog.String("component", "word_service")),
	}, nil
}

func (s *wordServiceImpl) CreateWord(
	ctx context.Context,
	userID uuid.UUID,
	input CreateWordInput,
) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == uuid.Nil {
		return nil, domain.NewValidationError("userID", "cannot be empty", domain.ErrInvalidID)
	}

	word, err := domain.NewWord(userID, input.Text, input.Pinyin, input.Translation)
	if err != nil {
		return nil, domain.NewValidationError("text", err.Error(), domain.ErrEmptyContent)
	}

	err = store.RunInTransaction(ctx, s.wordRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		if err := s.userRepo.WithTx(tx).EnsureExists(ctx, userID); err != nil {
			return err
		}
		return s.wordRepo.WithTx(tx).Create(ctx, word)
	})
	if err != nil {
		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("word", "create", err)
	}

	log.Info("word created",
		slog.String("user_id", userID.String()),
		slog.String("word_id", word.ID.String()))
	return word, nil
}

func (s *wordServiceImpl) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	return GetOwnedWord(ctx, s.wordRepo, userID, wordID)
}

func (s *wordServiceImpl) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := GetOwnedWord(ctx, s.wordRepo, userID, wordID); err != nil {
		return err
	}

	if err := s.wordRepo.Delete(ctx, wordID); err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return ErrWordNotFound
		}
		log.Error("failed to delete word",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return NewServiceError("word", "delete", err)
	}

	log.Info("word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()))
	return nil
}

// WordGetter is the lookup GetOwnedWord needs.
type WordGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

// GetOwnedWord loads a word and checks that userID owns it.
// It returns ErrWordNotFound or ErrNotOwned for the expected failures.
func GetOwnedWord(ctx context.Context, words WordGetter, userID, wordID uuid.UUID) (*domain.Word, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("userID", "cannot be empty", domain.ErrInvalidID)
	}
	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("wordID", "cannot be empty", domain.ErrInvalidID)
	}

	word, err := words.GetByID(ctx, wordID)
	if err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, NewServiceError("word", "get", err)
	}
	if !word.IsOwnedBy(userID) {
		return nil, ErrNotOwned
	}
	return word, nil
}
