// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"currex/config"
	domainerrors "currex/internal/domain/errors"
	"currex/internal/domain/service"
)

const defaultAccessTokenMinutes = 30

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string                 // Secret key for signing access tokens.
	method    *jwt.SigningMethodHMAC // Configured HMAC signing method.
	accessTTL time.Duration          // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := "HS256"
	minutes := defaultAccessTokenMinutes
	if cfg.Auth != nil {
		if cfg.Auth.Algorithm != "" {
			algorithm = cfg.Auth.Algorithm
		}
		if cfg.Auth.AccessTokenMinutes > 0 {
			minutes = cfg.Auth.AccessTokenMinutes
		}
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, errors.Errorf("unsupported jwt signing algorithm: %s", algorithm)
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		method:    method,
		accessTTL: time.Duration(minutes) * time.Minute,
	}, nil
}

// GenerateToken creates a signed access token with the subject claim set to
// the given value and the expiry computed from the configured lifetime.
func (s *jwtService) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,                     // Subject (who the token is for)
		"iat": now.Unix(),                  // Issued At
		"exp": now.Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string against the configured
// secret and signing method. Tokens signed with any other method are
// rejected outright, which rules out alg-none and algorithm-confusion tokens.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, "token past its expiry claim")
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unexpected claim set")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "subject claim missing")
	}

	out := &service.Claims{Subject: subject}
	if issuedAt, err := claims.GetIssuedAt(); err == nil && issuedAt != nil {
		out.IssuedAt = issuedAt.Time
	}
	if expiresAt, err := claims.GetExpirationTime(); err == nil && expiresAt != nil {
		out.ExpiresAt = expiresAt.Time
	}

	return out, nil
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
