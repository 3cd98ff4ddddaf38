package service

import (
	"context"
)

// ExchangeProvider defines the interface to the upstream currency-data API.
// Implementations own the transport details (endpoint, credentials, timeout);
// the use cases only see converted amounts and currency listings.
type ExchangeProvider interface {
	// Convert asks the provider to convert amount from one currency to
	// another and returns the provider's computed result.
	Convert(ctx context.Context, from, to string, amount float64) (float64, error)

	// ListCurrencies returns the provider's supported currencies as a
	// code-to-description mapping.
	ListCurrencies(ctx context.Context) (map[string]string, error)
}
