package storecrawl

import "context"

// Fetcher retrieves raw document content for a URL.
// Implementations classify failures with application error codes:
// ETIMEOUT when the round trip exceeds its deadline, ENOTFOUND for
// HTTP 404, EUNAVAILABLE for other HTTP error statuses and transport
// failures. Fetchers do not retry; retry policy belongs to the caller.
type Fetcher interface {
	// Fetch sends a GET request and returns the response body as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
