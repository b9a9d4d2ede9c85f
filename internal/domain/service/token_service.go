package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for issuing and validating access
// tokens. The session model is deliberately simple: one short-lived access
// token per sign-in, no refresh flow.
type TokenService interface {
	// GenerateAccessToken creates a signed token whose subject is the
	// username.
	GenerateAccessToken(username string) (string, error)

	// ValidateToken checks a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
