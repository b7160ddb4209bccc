// Package auth verifies the bearer tokens that identify the acting user.
// Accounts and logins belong to an external identity service; this package
// only shares its HMAC secret.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessTokenType is the token type accepted by ValidateToken.
const AccessTokenType = "access"

// JWTService issues and validates access tokens.
type JWTService interface {
	// GenerateToken signs an access token for userID. Used by development
	// tooling and tests.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken checks signature, type and validity window and returns
	// the claims of a valid access token.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims holds the fields extracted from a valid token.
type Claims struct {
	UserID    uuid.UUID `json:"uid,omitempty"`
	TokenType string    `json:"type,omitempty"`
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
