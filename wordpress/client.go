package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultPageSize is the per_page value used when callers do not set one.
	DefaultPageSize = 100

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	restBasePath = "/wp-json/wp/v2"
)

// Client represents a WordPress REST API client
type Client struct {
	baseURL     string
	username    string
	appPassword string
	userAgent   string
	pageSize    int
	httpClient  *http.Client
	logger      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPageSize sets the per_page value used by the auto-paginating list calls.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 && size <= 100 {
			c.pageSize = size
		}
	}
}

// WithBasicAuth sets application-password credentials sent as HTTP Basic auth.
func WithBasicAuth(username, appPassword string) Option {
	return func(c *Client) {
		c.username = username
		c.appPassword = appPassword
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a new WordPress client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("wordpress URL is required")
	}

	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:  baseURL,
		pageSize: DefaultPageSize,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the origin the client was configured with, without a
// trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TestConnection verifies the upstream REST API is reachable.
func (c *Client) TestConnection(ctx context.Context) error {
	params := url.Values{}
	params.Set("per_page", "1")
	if _, _, err := c.doRequest(ctx, http.MethodGet, "/posts", params, nil, ""); err != nil {
		return fmt.Errorf("failed to connect to WordPress: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request against the wp/v2 namespace. A non-empty
// cookies value is sent as the Cookie header and takes precedence over the
// configured application password.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, payload any, cookies string) ([]byte, http.Header, error) {
	requestURL := c.baseURL + restBasePath + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if cookies != "" {
		req.Header.Set("Cookie", cookies)
	} else if c.username != "" {
		req.SetBasicAuth(c.username, c.appPassword)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.Header, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.Header, parseAPIError(resp.StatusCode, body)
	}

	return body, resp.Header, nil
}

// parsePageInfo extracts the pagination totals WordPress reports via headers.
func parsePageInfo(header http.Header) PageInfo {
	info := PageInfo{}
	if v := header.Get("X-WP-Total"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.Total = n
		}
	}
	if v := header.Get("X-WP-TotalPages"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.TotalPages = n
		}
	}
	return info
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) (PageInfo, error) {
	body, header, err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil, "")
	if err != nil {
		return PageInfo{}, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return PageInfo{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return parsePageInfo(header), nil
}

// send issues a write (POST/PUT/DELETE) and decodes the JSON response into out.
func (c *Client) send(ctx context.Context, method, endpoint string, params url.Values, payload, out any) error {
	body, _, err := c.doRequest(ctx, method, endpoint, params, payload, "")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
