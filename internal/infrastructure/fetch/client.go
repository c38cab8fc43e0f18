package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/romeoscript/Unboxed/config"
	"github.com/romeoscript/Unboxed/internal/domain"
)

// Client retrieves raw product-page markup over HTTP. When configured it
// delegates to a headless browser for JS-rendered storefronts instead.
type Client struct {
	httpClient  *http.Client
	browser     *BrowserClient
	userAgent   string
	maxBody     int64
	rateLimiter *rate.Limiter
	useBrowser  bool
	log         *logrus.Logger
}

// NewClient creates a new page fetcher from the fetch configuration.
func NewClient(cfg config.FetchConfig, log *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		browser:     NewBrowserClient(cfg.Timeout, log),
		userAgent:   cfg.UserAgent,
		maxBody:     cfg.MaxBodyBytes,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 5),
		useBrowser:  cfg.UseHeadlessBrowser,
		log:         log,
	}
}

// FetchPage issues a single GET for the given URL and returns the raw markup.
// There are no retries: a transport failure here is surfaced to the caller as
// a hard error.
func (c *Client) FetchPage(ctx context.Context, url string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrFetchFailed, err)
	}

	if c.useBrowser {
		return c.browser.GetPageContent(ctx, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	// Browser-like headers: plenty of storefronts reject default Go clients
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	c.log.Debugf("Fetching %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status code %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailed, err)
	}

	if len(body) == 0 {
		return "", domain.ErrEmptyDocument
	}

	c.log.Debugf("Retrieved %d bytes from %s", len(body), url)
	return string(body), nil
}
