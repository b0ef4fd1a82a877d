package adapter

import (
	"context"
	"time"
)

// RoleAdmin is the role claim that unlocks runtime settings.
const RoleAdmin = "admin"

// TokenClaims represents the claims contained in a session bearer token.
type TokenClaims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// IsAdmin reports whether the claims carry the administrator role.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// TokenVerifier validates bearer tokens issued by the session layer.
type TokenVerifier interface {
	// Verify validates a token and returns its claims.
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}
