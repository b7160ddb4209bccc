package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamVador/Hanyu-VocabTracker/internal/config"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/auth"
)

const testSecret = "token-generator-test-secret-0123456789"

func TestGenerate(t *testing.T) {
	t.Setenv("VOCAB_DATABASE_URL", "postgres://localhost:5432/vocab")
	t.Setenv("VOCAB_AUTH_JWT_SECRET", testSecret)

	userID := uuid.New()
	token, got, err := generate("", userID.String())
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	verifier, err := auth.NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 1})
	require.NoError(t, err)
	claims, err := verifier.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	_, random, err := generate("", "")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, random)

	_, _, err = generate("", "not-a-uuid")
	assert.Error(t, err)
}
