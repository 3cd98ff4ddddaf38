// Package exchange contains the HTTP client for the upstream currency-data provider.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"currex/config"
	domainerrors "currex/internal/domain/errors"
	"currex/internal/domain/service"
)

const (
	defaultTimeout = 5 * time.Second

	apiKeyHeader = "apikey"

	// maxResponseBytes caps how much of a provider response is read.
	maxResponseBytes = 1 << 20
)

// apilayerClient implements ExchangeProvider against an apilayer
// currency_data style API: GET {base}/convert and GET {base}/list,
// authenticated through an API-key header.
type apilayerClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewApilayerClient is the constructor for apilayerClient.
func NewApilayerClient(cfg *config.Config, logger *slog.Logger) (service.ExchangeProvider, error) {
	if cfg.Exchange == nil || cfg.Exchange.BaseURL == "" {
		return nil, errors.New("exchange provider base URL must be provided")
	}

	timeout := cfg.Exchange.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &apilayerClient{
		baseURL: cfg.Exchange.BaseURL,
		apiKey:  cfg.Exchange.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// convertResponse mirrors the subset of the provider's convert payload we consume.
type convertResponse struct {
	Result *float64 `json:"result"`
}

// listResponse mirrors the subset of the provider's list payload we consume.
type listResponse struct {
	Currencies map[string]string `json:"currencies"`
}

// Convert calls the provider's convert endpoint and extracts the result field.
func (c *apilayerClient) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	query := url.Values{}
	query.Set("to", to)
	query.Set("from", from)
	query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	body, err := c.get(ctx, "/convert", query)
	if err != nil {
		return 0, err
	}

	var payload convertResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, errors.Wrap(domainerrors.ErrUpstream, "provider returned malformed JSON")
	}
	if payload.Result == nil {
		return 0, errors.Wrap(domainerrors.ErrUpstream, "provider response is missing the result field")
	}

	return *payload.Result, nil
}

// ListCurrencies calls the provider's list endpoint and extracts the currencies field.
func (c *apilayerClient) ListCurrencies(ctx context.Context) (map[string]string, error) {
	body, err := c.get(ctx, "/list", nil)
	if err != nil {
		return nil, err
	}

	var payload listResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUpstream, "provider returned malformed JSON")
	}
	if payload.Currencies == nil {
		return nil, errors.Wrap(domainerrors.ErrUpstream, "provider response is missing the currencies field")
	}

	return payload.Currencies, nil
}

// get performs a single bounded GET against the provider. Transport errors,
// timeouts and non-2xx statuses all surface as the upstream domain error;
// there are no retries.
func (c *apilayerClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build provider request")
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Provider request failed", slog.String("path", path), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstream, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUpstream, "failed to read provider response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Provider returned non-success status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Wrap(domainerrors.ErrUpstream, fmt.Sprintf("provider returned status %d", resp.StatusCode))
	}

	return body, nil
}
