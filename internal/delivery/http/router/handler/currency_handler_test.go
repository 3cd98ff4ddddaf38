package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "currex/internal/domain/errors"
	"currex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func getWithToken(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestCurrencyHandler_TestVerified(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, new(mockAuthUsecase), new(mockExchangeUsecase))
	token := issueTestToken(t, "alice")

	rec := getWithToken(e, "/currency/testverified", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"success"}`, rec.Body.String())
}

func TestCurrencyHandler_RequiresToken(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, new(mockAuthUsecase), new(mockExchangeUsecase))

	for _, path := range []string{"/currency/testverified", "/currency/exchange?value_from=USD&value_to=RUB&amount=1", "/currency/list"} {
		rec := getWithToken(e, path, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer", "path %s", path)
	}
}

func TestCurrencyHandler_Exchange_ReturnsBareNumber(t *testing.T) {
	t.Parallel()

	exchangeUC := new(mockExchangeUsecase)
	exchangeUC.On("Convert", mock.Anything, mock.MatchedBy(func(input *usecase.ConvertInput) bool {
		return input.ValueFrom == "USD" && input.ValueTo == "RUB" && input.Amount == 125.5
	})).Return(&usecase.ConvertOutput{Result: 9913.2}, nil)

	e := newTestServer(t, new(mockAuthUsecase), exchangeUC)
	token := issueTestToken(t, "alice")

	rec := getWithToken(e, "/currency/exchange?value_from=USD&value_to=RUB&amount=125.5", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "9913.2", strings.TrimSpace(rec.Body.String()))
	exchangeUC.AssertExpectations(t)
}

func TestCurrencyHandler_Exchange_InvalidCode(t *testing.T) {
	t.Parallel()

	exchangeUC := new(mockExchangeUsecase)
	exchangeUC.On("Convert", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCurrencyCode)

	e := newTestServer(t, new(mockAuthUsecase), exchangeUC)
	token := issueTestToken(t, "alice")

	rec := getWithToken(e, "/currency/exchange?value_from=USDT&value_to=RUB&amount=10", token)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The value must be 3 characters")
}

func TestCurrencyHandler_Exchange_MissingAmount(t *testing.T) {
	t.Parallel()

	exchangeUC := new(mockExchangeUsecase)

	e := newTestServer(t, new(mockAuthUsecase), exchangeUC)
	token := issueTestToken(t, "alice")

	rec := getWithToken(e, "/currency/exchange?value_from=USD&value_to=RUB", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	exchangeUC.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything)
}

func TestCurrencyHandler_Exchange_UpstreamFailure(t *testing.T) {
	t.Parallel()

	exchangeUC := new(mockExchangeUsecase)
	exchangeUC.On("Convert", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUpstream)

	e := newTestServer(t, new(mockAuthUsecase), exchangeUC)
	token := issueTestToken(t, "alice")

	rec := getWithToken(e, "/currency/exchange?value_from=USD&value_to=RUB&amount=10", token)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCurrencyHandler_List(t *testing.T) {
	t.Parallel()

	exchangeUC := new(mockExchangeUsecase)
	exchangeUC.On("ListCurrencies", mock.Anything).
		Return(map[string]string{"USD": "United States Dollar", "RUB": "Russian Ruble"}, nil)

	e := newTestServer(t, new(mockAuthUsecase), exchangeUC)
	token := issueTestToken(t, "alice")

	rec := getWithToken(e, "/currency/list", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"USD":"United States Dollar","RUB":"Russian Ruble"}`, rec.Body.String())
	exchangeUC.AssertExpectations(t)
}

func TestCurrencyHandler_List_UpstreamFailure(t *testing.T) {
	t.Parallel()

	exchangeUC := new(mockExchangeUsecase)
	exchangeUC.On("ListCurrencies", mock.Anything).Return(nil, domainerrors.ErrUpstream)

	e := newTestServer(t, new(mockAuthUsecase), exchangeUC)
	token := issueTestToken(t, "alice")

	rec := getWithToken(e, "/currency/list", token)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
