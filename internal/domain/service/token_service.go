package service

import (
	"time"
)

// Claims is the verified payload of an access token.
type Claims struct {
	Subject   string    // The username the token was issued for.
	IssuedAt  time.Time // When the token was signed.
	ExpiresAt time.Time // Absolute expiry instant.
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token encoding from the use cases.
type TokenService interface {
	// GenerateToken creates a signed, time-limited token carrying the subject claim.
	GenerateToken(subject string) (string, error)

	// ValidateToken checks signature and expiry of a token string. Expired
	// tokens fail with the dedicated expired-token domain error; every other
	// decode or signature failure reports the invalid-token domain error.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
