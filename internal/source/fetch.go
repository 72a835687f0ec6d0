package source

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the crawler to the boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobRadar/1.0)"

// minContentLength is the threshold below which a fetched page is assumed to
// be a script-rendered shell and retried through the headless browser.
const minContentLength = 500

// Fetcher retrieves page HTML, optionally falling back to a headless browser
// for script-rendered boards.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	useBrowser bool
}

// NewFetcher builds a Fetcher. When useBrowser is set, pages that come back
// nearly empty over plain HTTP are re-rendered in headless Chrome.
func NewFetcher(timeout time.Duration, useBrowser bool) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		userAgent:  DefaultUserAgent,
		useBrowser: useBrowser,
	}
}

// HTML fetches the page at url and returns its HTML.
func (f *Fetcher) HTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Message: "invalid request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: url, Message: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Message: "failed to read body", Cause: err}
	}

	html := string(body)
	if f.useBrowser && len(strings.TrimSpace(html)) < minContentLength {
		return f.renderWithBrowser(ctx, url)
	}
	return html, nil
}

// renderWithBrowser loads the page in headless Chrome and returns the
// rendered HTML. Requires Chrome/Chromium on the host.
func (f *Fetcher) renderWithBrowser(ctx context.Context, url string) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, f.client.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &FetchError{URL: url, Message: "browser rendering failed", Cause: err}
	}
	return html, nil
}
