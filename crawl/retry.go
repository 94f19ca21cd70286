package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/storecrawl"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays attempts a fetch with bounded backoff. Only
// transient failures — timeouts and transport/server unavailability — are
// retried; anything else (not found, invalid URL, cancellation) fails
// immediately. Retry lives at this boundary alone: extraction is total by
// contract and never participates in retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// retryable reports whether a fetch error is worth another attempt.
func retryable(err error) bool {
	switch storecrawl.ErrorCode(err) {
	case storecrawl.ETIMEOUT, storecrawl.EUNAVAILABLE:
		return true
	}
	return false
}
