package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// WordRepository is the word storage used by the word service.
type WordRepository interface {
	Create(ctx context.Context, word *domain.Word) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a repository bound to tx.
	WithTx(tx *sql.Tx) WordRepository

	// DB returns the underlying database connection.
	DB() *sql.DB
}

// UserRepository is the user storage used by the word service.
type UserRepository interface {
	EnsureExists(ctx context.Context, id uuid.UUID) error
	WithTx(tx *sql.Tx) UserRepository
}

// NewWordRepositoryAdapter lets a store.WordStore be used where a
// WordRepository is expected.
func NewWordRepositoryAdapter(wordStore store.WordStore, db *sql.DB) WordRepository {
	return &wordRepositoryAdapter{wordStore: wordStore, db: db}
}

type wordRepositoryAdapter struct {
	wordStore store.WordStore
	db        *sql.DB
}

func (a *wordRepositoryAdapter) Create(ctx context.Context, word *domain.Word) error {
	return a.wordStore.Create(ctx, word)
}

func (a *wordRepositoryAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return a.wordStore.GetByID(ctx, id)
}

func (a *wordRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	return a.wordStore.Delete(ctx, id)
}

func (a *wordRepositoryAdapter) WithTx(tx *sql.Tx) WordRepository {
	return &wordRepositoryAdapter{wordStore: a.wordStore.WithTx(tx), db: a.db}
}

func (a *wordRepositoryAdapter) DB() *sql.DB {
	return a.db
}

// NewUserRepositoryAdapter lets a store.UserStore be used where a
// UserRepository is expected.
func NewUserRepositoryAdapter(userStore store.UserStore) UserRepository {
	return &userRepositoryAdapter{userStore: userStore}
}

type userRepositoryAdapter struct {
	userStore store.UserStore
}

func (a *userRepositoryAdapter) EnsureExists(ctx context.Context, id uuid.UUID) error {
	return a.userStore.EnsureExists(ctx, id)
}

func (a *userRepositoryAdapter) WithTx(tx *sql.Tx) UserRepository {
	return &userRepositoryAdapter{userStore: a.userStore.WithTx(tx)}
}
