package mock

import (
	"context"

	"github.com/fwojciec/storecrawl"
)

var _ storecrawl.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of storecrawl.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, scope storecrawl.RequestScope) error
}

func (l *Limiter) Wait(ctx context.Context, scope storecrawl.RequestScope) error {
	return l.WaitFn(ctx, scope)
}
