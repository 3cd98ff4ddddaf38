package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "currex/internal/delivery/context"
	domainerrors "currex/internal/domain/errors"
	"currex/internal/domain/service"
	"currex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// currencyCodeLength is the length every ISO 4217 style code must have.
const currencyCodeLength = 3

// exchangeService implements the ExchangeUsecase interface.
type exchangeService struct {
	provider service.ExchangeProvider
	logger   *slog.Logger
}

// ExchangeServiceParams holds dependencies for exchangeService, injected by Fx.
type ExchangeServiceParams struct {
	fx.In

	Provider service.ExchangeProvider
	Logger   *slog.Logger
}

// NewExchangeService is the constructor for exchangeService.
func NewExchangeService(params ExchangeServiceParams) usecase.ExchangeUsecase {
	return &exchangeService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *exchangeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Convert validates the currency codes and delegates to the upstream
// provider. Both codes must be exactly 3 characters; the check runs before
// any network call. The destination code is upper-cased, the source code is
// sent as the client provided it.
func (srv *exchangeService) Convert(ctx context.Context, input *usecase.ConvertInput) (*usecase.ConvertOutput, error) {
	if len(input.ValueFrom) != currencyCodeLength || len(input.ValueTo) != currencyCodeLength {
		srv.log(ctx).Warn("Rejected conversion with malformed currency code",
			slog.String("from", input.ValueFrom),
			slog.String("to", input.ValueTo),
		)

		return nil, errors.Wrap(domainerrors.ErrInvalidCurrencyCode, "currency codes must be 3 characters")
	}

	result, err := srv.provider.Convert(ctx, input.ValueFrom, strings.ToUpper(input.ValueTo), input.Amount)
	if err != nil {
		srv.log(ctx).Error("Conversion call to provider failed",
			slog.String("from", input.ValueFrom),
			slog.String("to", input.ValueTo),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to convert currency")
	}

	srv.log(ctx).Debug("Conversion completed",
		slog.String("from", input.ValueFrom),
		slog.String("to", input.ValueTo),
		slog.Float64("amount", input.Amount),
		slog.Float64("result", result),
	)

	return &usecase.ConvertOutput{Result: result}, nil
}

// ListCurrencies returns the provider's supported currencies.
func (srv *exchangeService) ListCurrencies(ctx context.Context) (map[string]string, error) {
	currencies, err := srv.provider.ListCurrencies(ctx)
	if err != nil {
		srv.log(ctx).Error("Currency listing call to provider failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list currencies")
	}

	srv.log(ctx).Debug("Currency listing completed", slog.Int("count", len(currencies)))

	return currencies, nil
}
