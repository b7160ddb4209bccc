package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// UserStore defines the interface for user persistence.
// Accounts live in the identity service; this store only keeps the rows
// that words and review records reference.
type UserStore interface {
	// EnsureExists creates the user row if it is missing. It is idempotent.
	EnsureExists(ctx context.Context, id uuid.UUID) error

	// Delete removes a user and, by cascade, all of their words, review
	// records and snapshots.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
