package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// BrowserClient retrieves page content through a headless browser. Some
// storefronts render their option selectors client-side, so the plain HTTP
// body never contains them.
type BrowserClient struct {
	timeout time.Duration
	log     *logrus.Logger
}

// NewBrowserClient creates a new browser client.
func NewBrowserClient(timeout time.Duration, log *logrus.Logger) *BrowserClient {
	return &BrowserClient{
		timeout: timeout,
		log:     log,
	}
}

// GetPageContent navigates to the URL and returns the rendered outer HTML.
func (b *BrowserClient) GetPageContent(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(500*time.Millisecond), // give client-side rendering a beat
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("failed to get page content: %w", err)
	}

	b.log.Debugf("Rendered %d bytes from %s", len(html), url)
	return html, nil
}
