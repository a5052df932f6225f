// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// IssueToken mints a signed token carrying the user's identity.
	IssueToken(ctx context.Context, userID uuid.UUID, email, name string) (string, error)

	// ValidateToken verifies a token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
