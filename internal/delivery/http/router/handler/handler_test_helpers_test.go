package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"currex/config"
	"currex/internal/delivery/http/middleware"
	"currex/internal/delivery/http/validator"
	"currex/internal/infra/auth"
	"currex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.LoginOutput
	if v := args.Get(0); v != nil {
		output = v.(*usecase.LoginOutput)
	}

	return output, args.Error(1)
}

type mockExchangeUsecase struct {
	mock.Mock
}

func (m *mockExchangeUsecase) Convert(ctx context.Context, input *usecase.ConvertInput) (*usecase.ConvertOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.ConvertOutput
	if v := args.Get(0); v != nil {
		output = v.(*usecase.ConvertOutput)
	}

	return output, args.Error(1)
}

func (m *mockExchangeUsecase) ListCurrencies(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)

	var currencies map[string]string
	if v := args.Get(0); v != nil {
		currencies = v.(map[string]string)
	}

	return currencies, args.Error(1)
}

// newTestServer wires handlers, access guard and error handling into a real
// echo instance so tests cover the full request path.
func newTestServer(t *testing.T, authUC usecase.AuthUsecase, exchangeUC usecase.ExchangeUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{Algorithm: "HS256", AccessTokenMinutes: 30},
	}
	cfg.SecretKey.Access = testSecret

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	guard := middleware.NewAuthMiddleware(tokenSvc)
	authHandler := NewAuthHandler(authUC, logger)
	currencyHandler := NewCurrencyHandler(exchangeUC, logger)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	currencyGroup := e.Group("/currency")
	currencyGroup.Use(guard.Authenticate)
	currencyGroup.GET("/testverified", currencyHandler.TestVerified)
	currencyGroup.GET("/exchange", currencyHandler.Exchange)
	currencyGroup.GET("/list", currencyHandler.List)

	return e
}

// issueTestToken signs a token the test server's guard accepts.
func issueTestToken(t *testing.T, subject string) string {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{Algorithm: "HS256", AccessTokenMinutes: 30},
	}
	cfg.SecretKey.Access = testSecret

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokenSvc.GenerateToken(subject)
	require.NoError(t, err)

	return token
}
