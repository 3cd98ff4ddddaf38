package auth

import (
	"testing"
	"time"

	"currex/config"
	domainerrors "currex/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Algorithm:          "HS256",
			AccessTokenMinutes: 30,
		},
	}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestTokenService(t)

	before := time.Now()
	token, err := svc.GenerateToken("alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "alice", claims.Subject)

	// exp sits one configured lifetime past issuance.
	assert.WithinDuration(t, before.Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	// Craft a token whose exp already passed, signed with the right secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"iat": time.Now().Add(-time.Hour).Unix(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_WrongAlgorithm(t *testing.T) {
	svc := newTestTokenService(t)

	// HS512 with the correct secret still fails a service configured for HS256.
	confused := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := confused.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	// So does alg "none".
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noneString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err = svc.ValidateToken(noneString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	subjectless := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := subjectless.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{Algorithm: "HS256"},
	}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_UnsupportedAlgorithm(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{Algorithm: "RS256"},
	}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc := newTestTokenService(t)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenDuration())
}
