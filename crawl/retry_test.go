package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/storecrawl"
	"github.com/fwojciec/storecrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("success on first attempt", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "body", nil
		}

		body, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, delays)

		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries transient failures until success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", storecrawl.Errorf(storecrawl.EUNAVAILABLE, "HTTP 503")
			}
			return "body", nil
		}

		body, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, delays)

		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, 3, attempts)
	})

	t.Run("exhausts attempts on persistent timeout", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", storecrawl.Errorf(storecrawl.ETIMEOUT, "timeout")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, delays)

		require.Error(t, err)
		assert.Equal(t, storecrawl.ETIMEOUT, storecrawl.ErrorCode(err))
		assert.Equal(t, 3, attempts, "1 initial + 2 retries")
	})

	t.Run("does not retry not found", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", storecrawl.Errorf(storecrawl.ENOTFOUND, "HTTP 404")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, delays)

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("does not retry unclassified errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("boom")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, delays)

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("cancellation interrupts backoff", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", storecrawl.Errorf(storecrawl.EUNAVAILABLE, "HTTP 503")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, "https://example.com", fetch, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}
