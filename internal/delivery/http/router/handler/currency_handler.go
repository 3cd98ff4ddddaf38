package handler

import (
	"log/slog"
	"net/http"

	"currex/internal/delivery/http/response"
	"currex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CurrencyHandler holds dependencies for the token-guarded currency endpoints.
type CurrencyHandler struct {
	uc     usecase.ExchangeUsecase
	logger *slog.Logger
}

// NewCurrencyHandler is the constructor for CurrencyHandler, injected by Fx.
func NewCurrencyHandler(uc usecase.ExchangeUsecase, logger *slog.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		uc:     uc,
		logger: logger,
	}
}

// TestVerified is a probe endpoint that only answers when the access guard
// accepted the caller's token.
func (h *CurrencyHandler) TestVerified(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "success"})
}

// Exchange converts an amount between two currencies via the upstream
// provider and returns the bare numeric result.
func (h *CurrencyHandler) Exchange(c echo.Context) error {
	var input usecase.ConvertInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Convert(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output.Result)
}

// List returns the provider's supported currencies as a code-to-description map.
func (h *CurrencyHandler) List(c echo.Context) error {
	currencies, err := h.uc.ListCurrencies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, currencies)
}
