package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the default HTTP timeout per page
	DefaultTimeout = 30 * time.Second
	// DefaultDelay is the politeness pause between successive requests
	DefaultDelay = time.Second
	// DefaultUserAgent identifies the importer to source sites
	DefaultUserAgent = "vedaimport/1.0 (+scripture importer)"
	// DefaultMaxBodyBytes caps a single page
	DefaultMaxBodyBytes = 16 << 20
)

// Config configures an HTTPClient. Zero Timeout, UserAgent and MaxBodyBytes
// fall back to the defaults; a zero Delay disables throttling.
type Config struct {
	Timeout      time.Duration
	Delay        time.Duration
	UserAgent    string
	MaxBodyBytes int64
}

// HTTPClient implements Fetcher over net/http. Successive requests are
// spaced by the configured delay; the limiter is shared by all callers.
type HTTPClient struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewHTTPClient creates a fetcher with the given configuration.
func NewHTTPClient(cfg Config, logger *slog.Logger) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if cfg.Delay > 0 {
		limit = rate.Every(cfg.Delay)
	}

	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:      rate.NewLimiter(limit, 1),
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}

// Fetch implements Fetcher.
func (c *HTTPClient) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Error ignored: response consumed

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("fetched page",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return &Page{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		FetchedAt:   time.Now(),
	}, nil
}
