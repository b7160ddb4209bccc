package review

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
)

var (
	// ErrWordNotFound is returned when the answered word does not exist.
	// It is both a validation failure and a not-found condition.
	ErrWordNotFound = fmt.Errorf("%w: %w", domain.ErrValidation, service.ErrWordNotFound)

	// ErrWordNotOwned is returned when the acting user does not own the word.
	ErrWordNotOwned = fmt.Errorf("%w: word", service.ErrNotOwned)
)

// PersistenceError reports a storage failure while recording an outcome.
// Nothing was written when it is returned; the caller may retry.
type PersistenceError struct {
	Op     string
	UserID uuid.UUID
	WordID uuid.UUID
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("record review outcome: %s failed for user %s word %s: %v",
		e.Op, e.UserID, e.WordID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
