package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/storecrawl"
	"golang.org/x/time/rate"
)

// Politeness defaults: listing pages are spaced further apart than the
// detail fetches issued within one page.
const (
	DefaultListingDelay = 1 * time.Second
	DefaultDetailDelay  = 500 * time.Millisecond
)

var _ storecrawl.Limiter = (*PacedLimiter)(nil)

// PacedLimiter enforces a fixed minimum delay before each outbound request,
// with separate pacing per request scope. Burst is 1 for every scope, so
// requests are spaced by exactly the configured delay — a fixed-interval
// governor, not an adaptive one.
type PacedLimiter struct {
	mu       sync.Mutex
	limiters map[storecrawl.RequestScope]*rate.Limiter
}

// NewPacedLimiter creates a limiter with the given minimum delays between
// listing-page and product-detail requests. A zero delay disables pacing
// for that scope.
func NewPacedLimiter(listingDelay, detailDelay time.Duration) *PacedLimiter {
	return &PacedLimiter{
		limiters: map[storecrawl.RequestScope]*rate.Limiter{
			storecrawl.ScopeListing: newFixedLimiter(listingDelay),
			storecrawl.ScopeDetail:  newFixedLimiter(detailDelay),
		},
	}
}

// Wait blocks until the scope's pacing allows the next request.
// Unknown scopes pass through without delay.
func (l *PacedLimiter) Wait(ctx context.Context, scope storecrawl.RequestScope) error {
	l.mu.Lock()
	limiter, ok := l.limiters[scope]
	l.mu.Unlock()
	if !ok {
		return nil
	}
	return limiter.Wait(ctx)
}

func newFixedLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
