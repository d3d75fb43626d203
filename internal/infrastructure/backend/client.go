package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/acme/dashboard-gateway/internal/domain/shared"
)

// maxResponseSize is the maximum allowed response size from the data services (10MB)
const maxResponseSize = 10 * 1024 * 1024

// defaultTimeout bounds every call to a data service
const defaultTimeout = 10 * time.Second

// ErrMissingBaseURL indicates the client was configured without a backend address
var ErrMissingBaseURL = errors.New("backend: base URL is required")

// Config holds the connection settings for the remote data services
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("backend: invalid base URL: %w", err)
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return nil
}

// Client is the shared HTTP transport for all resource clients. It owns
// every piece of network-address and wire-format knowledge so the rest of
// the system speaks only in domain values.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the remote data services
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// get issues a GET request and decodes the JSON response into out.
// Pass a nil out to discard the body (mutation endpoints answer with
// payloads the gateway does not consume).
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.do(ctx, path, query)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrInvalidResponse, path, err)
	}
	return nil
}

// getInt issues a GET request against a scalar endpoint and parses the
// body as an integer. The services answer these either as a bare number
// or a quoted string.
func (c *Client) getInt(ctx context.Context, path string, query url.Values) (int64, error) {
	body, err := c.do(ctx, path, query)
	if err != nil {
		return 0, err
	}
	raw := strings.Trim(strings.TrimSpace(string(body)), `"`)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: not an integer: %q", shared.ErrInvalidResponse, path, raw)
	}
	return n, nil
}

// do performs the request and returns the raw body. Upstream response
// caching is explicitly bypassed on every call so reads are always fresh.
func (c *Client) do(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("backend: failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrBackendUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrBackendUnavailable, path, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrNotFound, path)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: %s: HTTP %d", shared.ErrRequestFailed, path, resp.StatusCode)
	}

	return body, nil
}
