package middleware

import (
	"strings"

	"currex/internal/delivery/http/response"
	domainerrors "currex/internal/domain/errors"
	"currex/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUsername is where the guard stores the authenticated username on
// the echo context for downstream handlers.
const ContextKeyUsername = "username"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
// Expired tokens are reported separately from every other failure so clients
// can tell "log in again" apart from "malformed token"; both carry a Bearer
// challenge header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return m.challenge(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return m.challenge(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrTokenExpired) {
				return m.challenge(c, domainerrors.ErrTokenExpired.ErrorCode(), domainerrors.ErrTokenExpired.Message())
			}

			return m.challenge(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		// Set the identified username on the context for handlers to use.
		c.Set(ContextKeyUsername, claims.Subject)

		return next(c)
	}
}

func (m *AuthMiddleware) challenge(c echo.Context, errorCode, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return response.Unauthorized(c, errorCode, message)
}
