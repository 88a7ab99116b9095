// Package wikia provides a thin client for the Wikia wiki-hosting
// platform's public read-only REST API (api/v1).
//
// Every method issues exactly one HTTP GET and returns the decoded JSON
// response with minimal reshaping. The remote schema is deliberately not
// modeled; most methods hand back the body as a map. There is no retry,
// no caching, and no authentication: the API is public and the transport
// is fully delegated to the injected http.Client.
//
// A client is either scoped to a single wiki or cross-wiki:
//
//	c := wikia.NewClient(wikia.WithWiki("runescape"))
//	body, err := c.Search(ctx, "dragon", nil)
//
// Cross-wiki clients (no WithWiki) talk to www.wikia.com and can only use
// the cross-wiki operations; Search, SearchSuggestions and GetNewArticles
// return a WikiRequiredError on them.
package wikia

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

const (
	// Version is the library version, reported in the User-Agent header.
	Version = "1.0.0"

	userAgent = "wikia/" + Version + " (github.com/ravener/wikia)"

	// crossWikiBaseURL is the API root when no wiki is selected.
	crossWikiBaseURL = "http://www.wikia.com/api/v1"

	defaultTimeout = 30 * time.Second
)

// Client is a Wikia API client. The zero value is not usable; construct
// with NewClient. Construction never fails and performs no I/O.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	wiki       string
	baseURL    string
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithWiki scopes the client to a single wiki, e.g. "runescape". The name
// is not validated; a bad name simply produces failing requests.
func WithWiki(name string) ClientOption {
	return func(c *Client) {
		c.wiki = name
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithBaseURL overrides the API root, mainly for tests pointing the
// client at a local server. A trailing slash is trimmed.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = trimSlash(u)
	}
}

// NewClient creates a Wikia API client. Without WithWiki the client is
// cross-wiki and talks to www.wikia.com.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: newHTTPClient(defaultTimeout),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		if c.wiki != "" {
			c.baseURL = fmt.Sprintf("http://www.%s.wikia.com/api/v1", c.wiki)
		} else {
			c.baseURL = crossWikiBaseURL
		}
	}

	return c
}

// Wiki returns the wiki the client is scoped to, or "" for a cross-wiki
// client.
func (c *Client) Wiki() string {
	return c.wiki
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get issues a single GET against path and decodes the JSON response into
// result. Query parameters were already reduced to the caller-supplied
// ones; absent options never reach the wire. Transport failures and
// non-2xx statuses surface to the caller untranslated.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Setting Accept-Encoding by hand disables the transport's transparent
	// decompression, so gzip bodies are ours to unwrap.
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("gzip response: %w", err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("api request",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// getBody returns the whole decoded response body.
func (c *Client) getBody(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	var body map[string]any
	if err := c.get(ctx, path, params, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// getField returns a single top-level field of the response body.
func (c *Client) getField(ctx context.Context, path string, params url.Values, field string) (any, error) {
	body, err := c.getBody(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return body[field], nil
}

// newHTTPClient creates an HTTP client with optimized transport settings.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   20,
			MaxConnsPerHost:       50,
			IdleConnTimeout:       120 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			ForceAttemptHTTP2:     true,
		},
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func trimSlash(u string) string {
	for len(u) > 0 && u[len(u)-1] == '/' {
		u = u[:len(u)-1]
	}
	return u
}
