package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamVador/Hanyu-VocabTracker/internal/config"
)

const testSecret = "test-jwt-secret-that-is-32-chars-long"

func testService(t *testing.T, now time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60},
		func() time.Time { return now })
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short"})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := testService(t, issued)
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, AccessTokenType, claims.TokenType)
	assert.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issued.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Failures(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	ctx := context.Background()

	issuer := testService(t, issued)
	valid, err := issuer.GenerateToken(ctx, userID)
	require.NoError(t, err)
	refresh, err := issuer.sign(ctx, userID, "refresh", issued.Add(time.Hour))
	require.NoError(t, err)
	noUser, err := issuer.sign(ctx, uuid.Nil, AccessTokenType, issued.Add(time.Hour))
	require.NoError(t, err)

	other, err := newHMACJWTService(config.AuthConfig{JWTSecret: "another-secret-that-is-32-chars-long!!"},
		func() time.Time { return issued })
	require.NoError(t, err)
	foreign, err := other.GenerateToken(ctx, userID)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": userID.String(), "type": "access"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{"empty", "", issued, ErrMissingToken},
		{"garbage", "not-a-token", issued, ErrInvalidToken},
		{"expired", valid, issued.Add(2 * time.Hour), ErrExpiredToken},
		{"within clock skew", valid, issued.Add(61 * time.Minute), nil},
		{"wrong secret", foreign, issued, ErrInvalidToken},
		{"unsigned", none, issued, ErrInvalidToken},
		{"refresh token", refresh, issued, ErrWrongTokenType},
		{"missing user", noUser, issued, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testService(t, tt.now).ValidateToken(ctx, tt.token)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
