// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/levy-tracker/backend/internal/application/adapter"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
)

// SessionClaims represents the claims the session layer puts in access tokens.
type SessionClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// tokenVerifier implements the adapter.TokenVerifier interface.
type tokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier creates a verifier for HS256 tokens signed with secret.
// An empty issuer accepts any issuer.
func NewTokenVerifier(secret, issuer string) adapter.TokenVerifier {
	return &tokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify validates an access token and returns its claims.
func (v *tokenVerifier) Verify(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		UserID:    claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
