// Package client implements the TheMovieDB request executor and the thin
// API wrappers built on top of it.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/moviedb/tmdbx/apierr"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.themoviedb.org/3/"
	defaultUserAgent = "tmdbx/1.0"

	defaultHTTPTimeout = 30 * time.Second
	defaultMaxRetries  = 5
	defaultRetryWait   = 1 * time.Second
)

// Client issues GET/POST/DELETE requests against the API and turns every
// outcome into either a body string or a single *apierr.APIError. It holds
// no per-request state, so one instance is safe for concurrent use; the
// underlying http.Client is shared across all calls.
type Client struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient *http.Client

	maxRetries  int
	retryWait   time.Duration
	httpTimeout time.Duration // 0 means "leave the HTTP client's own timeout alone"
	logger      zerolog.Logger
}

type Option func(*Client) error

// WithBaseURL overrides the API base URL. A trailing slash is enforced.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base url %q", raw)
		}
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		c.BaseURL = raw
		return nil
	}
}

// WithHTTPClient swaps the underlying HTTP client. The client is long-lived
// and reused for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.HTTPClient = hc
		return nil
	}
}

// WithHTTPTimeout sets the total per-attempt timeout. It wins regardless of
// option order and never mutates a client supplied via WithHTTPClient.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be positive, got %v", d)
		}
		c.httpTimeout = d
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(ua) == "" {
			return fmt.Errorf("user agent must not be blank")
		}
		c.UserAgent = ua
		return nil
	}
}

// WithMaxRetries caps how many times a rate-limited GET is retried.
// Zero disables retrying.
func WithMaxRetries(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("max retries must not be negative, got %d", n)
		}
		c.maxRetries = n
		return nil
	}
}

// WithRetryWait sets the base unit of the linear backoff: retry n waits
// n * base before going out again.
func WithRetryWait(base time.Duration) Option {
	return func(c *Client) error {
		if base <= 0 {
			return fmt.Errorf("retry wait must be positive, got %v", base)
		}
		c.retryWait = base
		return nil
	}
}

// WithLogger attaches a logger; retries and failed validations are logged
// at debug level. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		BaseURL:    defaultBaseURL,
		APIKey:     apiKey,
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{Timeout: defaultHTTPTimeout},
		maxRetries: defaultMaxRetries,
		retryWait:  defaultRetryWait,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("client option: %w", err)
		}
	}
	if c.httpTimeout > 0 {
		// shallow copy keeps the caller's client untouched
		hc := *c.HTTPClient
		hc.Timeout = c.httpTimeout
		c.HTTPClient = &hc
	}
	return c, nil
}

// Get fetches target, retrying on 429 with a linear backoff (1x, 2x, ...
// maxRetries x the base wait). A 429 on the final attempt is classified
// like any other status.
func (c *Client) Get(ctx context.Context, target string) (string, error) {
	status, body, err := c.do(ctx, http.MethodGet, target, "")
	if err != nil {
		return "", err
	}

	for attempt := 1; status == http.StatusTooManyRequests && attempt <= c.maxRetries; attempt++ {
		wait := c.retryWait * time.Duration(attempt)
		c.logger.Debug().
			Str("url", target).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("rate limited, backing off")
		c.waitRetry(ctx, wait)

		status, body, err = c.do(ctx, http.MethodGet, target, "")
		if err != nil {
			return "", err
		}
	}

	return c.validate(status, body, target)
}

// Post sends jsonBody to target in a single attempt. Rate limiting is not
// retried here: replaying a mutation could duplicate its side effects.
func (c *Client) Post(ctx context.Context, target, jsonBody string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, target, jsonBody)
	if err != nil {
		return "", err
	}
	return c.validate(status, body, target)
}

// Delete issues a single DELETE against target. Like Post, never retried.
func (c *Client) Delete(ctx context.Context, target string) (string, error) {
	status, body, err := c.do(ctx, http.MethodDelete, target, "")
	if err != nil {
		return "", err
	}
	return c.validate(status, body, target)
}

// do issues one attempt and fully consumes the response, so the shared
// transport can reuse the connection before any retry. The request is
// built directly from the caller's target URL.
func (c *Client) do(ctx context.Context, method, target, jsonBody string) (int, string, error) {
	var reqBody io.Reader
	if jsonBody != "" {
		reqBody = strings.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return 0, "", &apierr.APIError{Kind: apierr.KindConnection, URL: target, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	if method == http.MethodPost || method == http.MethodDelete {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, "", &apierr.APIError{Kind: apierr.KindConnection, URL: target, Cause: err}
	}
	defer resp.Body.Close()

	slurp, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", &apierr.APIError{
			Kind:   apierr.KindConnection,
			URL:    target,
			Status: resp.StatusCode,
			Cause:  err,
		}
	}
	return resp.StatusCode, string(slurp), nil
}

// waitRetry blocks for the given backoff. A context interruption only ends
// the wait early; the retry itself still goes out and fails on its own if
// the context is truly dead.
func (c *Client) waitRetry(ctx context.Context, wait time.Duration) {
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// validate is the single chokepoint between a raw response and the caller:
// exactly one of body or error comes out.
func (c *Client) validate(status int, body, target string) (string, error) {
	if apiErr := apierr.Classify(status, body, target); apiErr != nil {
		c.logger.Debug().
			Str("url", target).
			Int("status", status).
			Str("kind", apiErr.Kind.String()).
			Msg("request failed")
		return "", apiErr
	}
	return body, nil
}

// endpoint builds "<base><path>?api_key=<key>" for the API wrappers.
func (c *Client) endpoint(path string) string {
	target := c.BaseURL + strings.TrimPrefix(path, "/")
	if c.APIKey == "" {
		return target
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + "api_key=" + url.QueryEscape(c.APIKey)
}
