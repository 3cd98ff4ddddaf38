package usecase

import (
	"context"
)

// ConvertInput defines the data required for a currency conversion.
// The codes travel exactly as the client sent them; validation and
// normalization happen inside the use case.
type ConvertInput struct {
	ValueFrom string  `json:"value_from" query:"value_from" validate:"required"`
	ValueTo   string  `json:"value_to" query:"value_to" validate:"required"`
	Amount    float64 `json:"amount" query:"amount" validate:"required,gt=0"`
}

// ConvertOutput returns the provider's computed conversion result.
type ConvertOutput struct {
	Result float64
}

// ExchangeUsecase defines the interface for currency operations backed by
// the upstream exchange-rate provider.
type ExchangeUsecase interface {
	Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error)
	ListCurrencies(ctx context.Context) (map[string]string, error)
}
