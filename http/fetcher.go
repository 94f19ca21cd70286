// Package http provides an HTTP-based implementation of storecrawl.Fetcher
// for fetching server-rendered storefront pages.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/storecrawl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds the total round trip for one request.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements storecrawl.Fetcher at compile time.
var _ storecrawl.Fetcher = (*Fetcher)(nil)

// browserHeaders is the identifying header set sent with every request.
// Many storefronts reject clients that don't present a realistic browser
// signature.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Fetcher retrieves page content over HTTP. It performs no retries and
// mutates no shared state; retry policy belongs to the caller.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document body from the given URL, decoded to UTF-8.
// Failures are classified with application error codes: ETIMEOUT for
// deadline overruns, ENOTFOUND for HTTP 404, EUNAVAILABLE for other error
// statuses and transport failures.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", storecrawl.Errorf(storecrawl.EINVALID, "invalid URL %q: %v", url, err)
	}
	for name, value := range browserHeaders {
		req.Header.Set(name, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", storecrawl.Errorf(storecrawl.ENOTFOUND, "HTTP 404 for %s", url)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", storecrawl.Errorf(storecrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransportError(url, err)
	}

	return decodeBody(body, resp.Header.Get("Content-Type")), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classifyTransportError maps transport-level failures onto application
// error codes. Context cancellation is passed through unchanged so callers
// can distinguish it from server-side trouble.
func classifyTransportError(url string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return storecrawl.Errorf(storecrawl.ETIMEOUT, "timeout fetching %s", url)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return storecrawl.Errorf(storecrawl.ETIMEOUT, "timeout fetching %s", url)
	}
	return storecrawl.Errorf(storecrawl.EUNAVAILABLE, "fetching %s: %v", url, err)
}

// decodeBody converts a response body to UTF-8 using the charset declared
// in the Content-Type header or sniffed from the content itself.
func decodeBody(data []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil || !utf8.Valid(decoded) {
		return string(data)
	}
	return string(decoded)
}
