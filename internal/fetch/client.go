package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"tidyprep/internal/config"
	"tidyprep/internal/infrastructure"
)

// ErrBadStatus indicates the server answered with a non-success status.
var ErrBadStatus = fmt.Errorf("unexpected HTTP status")

// Client downloads dataset source files over HTTP
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a download client from HTTP configuration
func NewClient(cfg config.HTTPConfig) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
	}
}

// Fetch performs a single GET request and returns the response body.
// Any non-2xx status is an error; there are no retries, a failed download
// fails the whole run.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := infrastructure.LoggerFromContext(ctx)
	logger.Info("Downloading source file", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d for %s", ErrBadStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	logger.Info("Download complete",
		slog.String("url", url),
		slog.Int("bytes", len(body)))
	return body, nil
}
