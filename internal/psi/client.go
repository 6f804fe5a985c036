// Package psi is the HTTP client for the PageSpeed Insights provider.
package psi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

// DefaultEndpoint is the PageSpeed Insights v5 runPagespeed endpoint.
const DefaultEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// Client calls the PageSpeed Insights API. One request per analysis, no
// retries; a request cannot be aborted once submitted beyond the configured
// timeout.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

var _ contract.PageSpeedClient = &Client{} // Compile-time check

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint. Used by tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient returns a provider client. apiKey may be empty; the provider
// accepts unauthenticated requests at a lower quota.
func NewClient(apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   DefaultEndpoint,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunPagespeed requests a performance analysis for targetURL. Non-success
// responses surface the provider's error message verbatim when present, or
// a generic "HTTP error <status>" otherwise.
func (c *Client) RunPagespeed(ctx context.Context, targetURL string, strategy schema.Strategy) (*schema.PagespeedResponse, error) {
	params := url.Values{}
	params.Set("url", targetURL)
	params.Set("strategy", string(strategy))
	params.Set("category", "performance")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var decoded schema.PagespeedResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Best-effort decode of the error payload; the body may be anything.
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil &&
			decoded.Error != nil && decoded.Error.Message != "" {
			return nil, fmt.Errorf("%s", decoded.Error.Message)
		}
		return nil, fmt.Errorf("HTTP error %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return &decoded, nil
}
