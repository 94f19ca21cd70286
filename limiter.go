package storecrawl

import "context"

// RequestScope identifies the kind of outbound request for politeness
// pacing. Listing-page fetches are spaced further apart than the
// product-detail fetches issued within one page.
type RequestScope string

// Request scopes.
const (
	ScopeListing RequestScope = "listing"
	ScopeDetail  RequestScope = "detail"
)

// Limiter enforces a minimum delay before each outbound request.
// It is a fixed-spacing rate limiter, not adaptive to server response
// times or error rates.
type Limiter interface {
	// Wait blocks until the scope's pacing allows the next request.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, scope RequestScope) error
}
