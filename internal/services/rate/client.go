// Package rate fetches the official USD to Bs. exchange rate.
package rate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultURL is the dolarapi endpoint for the official BCV rate
const DefaultURL = "https://ve.dolarapi.com/v1/dolares/oficial"

// DefaultTimeout bounds a single rate request
const DefaultTimeout = 10 * time.Second

// ErrRateUnavailable is returned when the rate cannot be obtained
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// Provider returns the current Bs. per USD rate
type Provider interface {
	GetOfficialRate(ctx context.Context) (float64, error)
}

// Config configures the HTTP client
type Config struct {
	URL     string
	Timeout time.Duration
}

// DefaultConfig returns the production endpoint and timeout
func DefaultConfig() Config {
	return Config{
		URL:     DefaultURL,
		Timeout: DefaultTimeout,
	}
}

// Client fetches the rate over HTTP
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements Provider
var _ Provider = (*Client)(nil)

// NewClient creates a rate client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type rateResponse struct {
	Average *float64 `json:"promedio"`
}

// GetOfficialRate performs one GET against the rate endpoint. Failures are
// logged and returned wrapped in ErrRateUnavailable.
func (c *Client) GetOfficialRate(ctx context.Context) (float64, error) {
	value, err := c.fetch(ctx)
	if err != nil {
		c.logger.Error("failed to fetch exchange rate", "url", c.url, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrRateUnavailable, err)
	}
	return value, nil
}

func (c *Client) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if body.Average == nil {
		return 0, errors.New("response has no promedio field")
	}
	if *body.Average <= 0 {
		return 0, fmt.Errorf("non-positive rate %v", *body.Average)
	}
	return *body.Average, nil
}

// Static always returns the same rate, or Err when set
type Static struct {
	Rate float64
	Err  error
}

// Ensure Static implements Provider
var _ Provider = Static{}

func (s Static) GetOfficialRate(context.Context) (float64, error) {
	if s.Err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRateUnavailable, s.Err)
	}
	return s.Rate, nil
}
