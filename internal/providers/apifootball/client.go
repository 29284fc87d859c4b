package apifootball

import (
	"bytes"
	"context"
	"errors"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/api-football-proxy/internal/providers"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var errEmptyBody = errors.New("empty body")

// Config controls how the client reaches API-Football.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client performs authenticated GETs against API-Football and returns the raw JSON body.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient httpDoer
}

var _ providers.Upstream = (*Client)(nil)

// NewClient constructs an API-Football client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := resolveTimeout(cfg.Timeout)
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		httpClient: resolveHTTPClient(cfg.HTTPClient, timeout),
	}
}

// Fetch issues a single GET to baseURL+path. The call is bounded by the client
// timeout and by ctx, whichever ends first.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.buildRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", Name, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.UpstreamError{
			Upstream:   Name,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", Name, path, err)
	}
	if err := validateJSON(body); err != nil {
		return nil, fmt.Errorf("%s %s: decode body: %w", Name, path, err)
	}
	return json.RawMessage(body), nil
}

// validateJSON accepts exactly one JSON value, JSON null included.
// Unmarshal rejects trailing bytes; Valid does not.
func validateJSON(body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}
	var value json.RawMessage
	return jsonAPI.Unmarshal(body, &value)
}

func (c *Client) buildRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	target := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	return req, nil
}
