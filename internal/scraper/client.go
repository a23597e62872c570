package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	BaseURL   = "https://www.nba.com"
	UserAgent = "tourdates-scraper/0.1 (+https://github.com/parth/tourdates)"
	Timeout   = 20 * time.Second

	// requestInterval spaces successive fetches so schedule and box score
	// pages are not hammered in a tight loop.
	requestInterval = 500 * time.Millisecond
)

// Fetcher retrieves one document by URL. Implementations return the raw
// response body text; any timeout, connection, or non-2xx condition
// surfaces as an error the caller treats as a per-document skip.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client is the nba.com Fetcher. A token-bucket limiter spaces requests;
// tests and --no-delay runs construct the client without one.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client with the politeness delay enabled.
func NewClient() *Client {
	return &Client{
		client:  &http.Client{Timeout: Timeout},
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
	}
}

// NewClientNoDelay creates a Client that fetches at full speed.
func NewClientNoDelay() *Client {
	return &Client{
		client: &http.Client{Timeout: Timeout},
	}
}

// Fetch retrieves url and returns the response body as text.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("waiting for rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(body), nil
}
