//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// WithTx runs fn inside a transaction that is always rolled back,
// so tests never see each other's data.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin test transaction")
	defer func() { _ = tx.Rollback() }()

	fn(t, tx)
}

// CreateTestUser inserts a user row and returns its ID.
func CreateTestUser(t *testing.T, db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.ExecContext(context.Background(), `INSERT INTO users (id) VALUES ($1)`, id)
	require.NoError(t, err, "failed to create test user")
	return id
}
